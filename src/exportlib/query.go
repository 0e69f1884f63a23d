package exportlib

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/cafecoder-dev/contest-export/src/types"
)

// FetchUsers ... コンテストに本番参加 (virtual = 0) しているユーザ
func FetchUsers(db *gorm.DB, contestID int64) ([]types.UserGORM, error) {
	users := []types.UserGORM{}

	err := db.
		Table("auth_user u").
		Select("p.id AS user_id, u.username AS username, u.first_name AS full_name").
		Joins("JOIN judge_profile p ON p.user_id = u.id").
		Joins("JOIN judge_contestparticipation cp ON p.id = cp.user_id").
		Where("cp.virtual = 0 AND cp.contest_id = ?", contestID).
		Order("p.id").
		Scan(&users).
		Error
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return users, nil
}

// FetchProblems ... コンテストに紐づく問題と配点。
// resolver 側は配列の順に A, B, C... と問題番号を振るので、コンテスト内の並び順で返す
func FetchProblems(db *gorm.DB, contestID int64) ([]types.ProblemGORM, error) {
	problems := []types.ProblemGORM{}

	err := db.
		Table("judge_problem p").
		Select("p.id AS problem_id, p.name AS name, cp.points AS points").
		Joins("JOIN judge_contestproblem cp ON p.id = cp.problem_id").
		Where("cp.contest_id = ?", contestID).
		Order("cp.`order`, p.id").
		Scan(&problems).
		Error
	if err != nil {
		return nil, fmt.Errorf("fetch problems: %w", err)
	}

	return problems, nil
}

// FetchSubmissions ... 本番参加者の、結果が確定した提出のみ
func FetchSubmissions(db *gorm.DB, contestID int64) ([]types.SubmissionGORM, error) {
	submissions := []types.SubmissionGORM{}

	err := db.
		Table("judge_contestsubmission cs").
		Select("cs.submission_id AS submission_id, s.problem_id AS problem_id, s.user_id AS user_id, " +
			"s.date AS date, c.start_time AS start_time, cs.points AS points").
		Joins("INNER JOIN judge_submission s ON cs.submission_id = s.id").
		Joins("INNER JOIN judge_contestparticipation cp ON cs.participation_id = cp.id").
		Joins("INNER JOIN judge_contest c ON cp.contest_id = c.id").
		Where("cp.virtual = 0 AND c.id = ?", contestID).
		Where("s.result IN (?)", types.TerminalVerdictStrings()).
		Order("cs.submission_id").
		Scan(&submissions).
		Error
	if err != nil {
		return nil, fmt.Errorf("fetch submissions: %w", err)
	}

	return submissions, nil
}
