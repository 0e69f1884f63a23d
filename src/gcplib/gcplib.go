package gcplib

import (
	"context"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Bucket ... アップロード先。テストでは差し替える
type Bucket interface {
	NewWriter(ctx context.Context, object string) io.WriteCloser
}

type gcsBucket struct {
	handle *storage.BucketHandle
}

func (b gcsBucket) NewWriter(ctx context.Context, object string) io.WriteCloser {
	w := b.handle.Object(object).NewWriter(ctx)
	w.ContentType = "application/json"
	return w
}

// NewBucket ... credentialFile が空なら Application Default Credentials を使う
func NewBucket(ctx context.Context, credentialFile, name string) (Bucket, func() error, error) {
	var opts []option.ClientOption
	if credentialFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	return gcsBucket{handle: client.Bucket(name)}, client.Close, nil
}

// UploadFile ... path の中身を object として置く。書き込みエラーは Close で返ってくる
func UploadFile(ctx context.Context, bucket Bucket, object, path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := bucket.NewWriter(ctx, object)
	if _, err := io.Copy(w, fp); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}
