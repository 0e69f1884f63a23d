package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserGORM ... judge_contestparticipation に参加しているユーザ (virtual = 0 のみ)
type UserGORM struct {
	UserID   int64   `gorm:"column:user_id"` // judge_profile.id
	Username string  `gorm:"column:username"`
	FullName *string `gorm:"column:full_name"`
}

type ProblemGORM struct {
	ProblemID int64           `gorm:"column:problem_id"`
	Name      string          `gorm:"column:name"`
	Points    decimal.Decimal `gorm:"column:points"` // judge_contestproblem.points
}

// SubmissionGORM ... judge_contestsubmission と judge_submission を結合した行
type SubmissionGORM struct {
	SubmissionID int64           `gorm:"column:submission_id"`
	ProblemID    int64           `gorm:"column:problem_id"`
	UserID       int64           `gorm:"column:user_id"`
	Date         time.Time       `gorm:"column:date"`
	StartTime    time.Time       `gorm:"column:start_time"`
	Points       decimal.Decimal `gorm:"column:points"` // judge_contestsubmission.points
}

// Elapsed ... コンテスト開始からの経過秒数。端数は 0 方向に切り捨てる
func (s SubmissionGORM) Elapsed() int64 {
	return int64(s.Date.Sub(s.StartTime) / time.Second)
}
