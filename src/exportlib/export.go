package exportlib

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/cafecoder-dev/contest-export/src/convlib"
	"github.com/cafecoder-dev/contest-export/src/types"
)

// FileName ... <contestID>.json
func FileName(contestID int64) string {
	return fmt.Sprintf("%d.json", contestID)
}

// Export ... contestID のデータを outDir/<contestID>.json に書き出し、そのパスを返す。
// 3 つのクエリがすべて成功するまでファイルは作らない。
func Export(db *gorm.DB, contestID int64, outDir string) (string, error) {
	log := logrus.WithField("contest_id", contestID)

	users, err := FetchUsers(db, contestID)
	if err != nil {
		return "", err
	}
	log.WithField("rows", len(users)).Info("fetched users")

	problems, err := FetchProblems(db, contestID)
	if err != nil {
		return "", err
	}
	log.WithField("rows", len(problems)).Info("fetched problems")

	submissions, err := FetchSubmissions(db, contestID)
	if err != nil {
		return "", err
	}
	log.WithField("rows", len(submissions)).Info("fetched submissions")

	doc := BuildDocument(users, problems, submissions)

	path := filepath.Join(outDir, FileName(contestID))
	fp, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	if err := WriteDocument(fp, doc); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := fp.Close(); err != nil {
		return "", err
	}

	return path, nil
}

// BuildDocument ... {users, problems, submissions} の順に並べた出力用の Record
func BuildDocument(users []types.UserGORM, problems []types.ProblemGORM, submissions []types.SubmissionGORM) types.Record {
	userRecords := make([]types.Record, 0, len(users))
	for _, u := range users {
		var fullName interface{}
		if u.FullName != nil {
			fullName = *u.FullName
		}
		userRecords = append(userRecords, types.Record{
			{Key: "userId", Value: u.UserID},
			{Key: "username", Value: u.Username},
			{Key: "fullName", Value: fullName},
		})
	}

	problemRecords := make([]types.Record, 0, len(problems))
	for _, p := range problems {
		problemRecords = append(problemRecords, types.Record{
			{Key: "problemId", Value: p.ProblemID},
			{Key: "name", Value: p.Name},
			{Key: "points", Value: p.Points},
		})
	}

	submissionRecords := make([]types.Record, 0, len(submissions))
	for _, s := range submissions {
		submissionRecords = append(submissionRecords, types.Record{
			{Key: "submissionId", Value: s.SubmissionID},
			{Key: "problemId", Value: s.ProblemID},
			{Key: "userId", Value: s.UserID},
			{Key: "time", Value: s.Elapsed()},
			{Key: "points", Value: s.Points},
		})
	}

	return types.Record{
		{Key: "users", Value: userRecords},
		{Key: "problems", Value: problemRecords},
		{Key: "submissions", Value: submissionRecords},
	}
}

// WriteDocument ... decimal を float に直してから、インデント 2 で書き出す。非 ASCII はエスケープしない
func WriteDocument(w io.Writer, doc types.Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(convlib.Normalize(doc))
}
