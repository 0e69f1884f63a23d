package types

import (
	"bytes"
	"encoding/json"
)

// Field ... Record の 1 要素
type Field struct {
	Key   string
	Value interface{}
}

// Record ... キーの順序を保ったまま JSON にする連想配列。
// encoding/json の map はキーをソートしてしまうので、SELECT の列順で出したいときはこちらを使う。
type Record []Field

// Get ... Key に対応する値。なければ nil, false
func (r Record) Get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalNoEscape(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UserJSON, ProblemJSON, SubmissionJSON ... エクスポートした JSON を読み戻すときの型
type UserJSON struct {
	UserID   int64   `json:"userId"`
	Username string  `json:"username"`
	FullName *string `json:"fullName"`
}

type ProblemJSON struct {
	ProblemID int64   `json:"problemId"`
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
}

type SubmissionJSON struct {
	SubmissionID int64   `json:"submissionId"`
	ProblemID    int64   `json:"problemId"`
	UserID       int64   `json:"userId"`
	Time         int64   `json:"time"`
	Points       float64 `json:"points"`
}

type ExportJSON struct {
	Users       []UserJSON       `json:"users"`
	Problems    []ProblemJSON    `json:"problems"`
	Submissions []SubmissionJSON `json:"submissions"`
}

// ImageBundleJSON ... ファイル名 (拡張子なし) -> data URI
type ImageBundleJSON map[string]string
