package imagelib

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/cafecoder-dev/contest-export/src/types"
)

// DefaultExt ... resolver が読む画像は png
const DefaultExt = ".png"

// DefaultFileName ... 出力ファイル名
const DefaultFileName = "images.json"

// Bundle ... dir 直下の *ext を data URI にして、拡張子を除いたファイル名をキーにした map を返す
func Bundle(dir, ext string) (types.ImageBundleJSON, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, err
	}

	bundle := types.ImageBundleJSON{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		stem := strings.TrimSuffix(filepath.Base(path), ext)
		bundle[stem] = DataURI(ext, data)
	}

	return bundle, nil
}

// DataURI ... data:<mime>;base64,<payload>
func DataURI(ext string, data []byte) string {
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func WriteBundle(w io.Writer, bundle types.ImageBundleJSON) error {
	return json.NewEncoder(w).Encode(bundle)
}

// BundleFile ... Bundle して out に書き出す
func BundleFile(dir, ext, out string) (int, error) {
	bundle, err := Bundle(dir, ext)
	if err != nil {
		return 0, err
	}

	fp, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	if err := WriteBundle(fp, bundle); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}

	return len(bundle), fp.Close()
}
