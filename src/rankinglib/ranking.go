package rankinglib

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cafecoder-dev/contest-export/src/types"
)

// Status ... 問題ごとの状態。Pending は他と OR して使う
type Status int

const (
	Unattempted Status = 1 << iota
	Incorrect
	Partial
	Accepted
	Pending
)

// PenaltyPerIncorrect ... 誤答 1 回あたりのペナルティ秒数 (VNOJ)。ICPC なら 1200
const PenaltyPerIncorrect = 300

type Options struct {
	// FrozenTime ... この秒数以降の提出は凍結扱い。0 なら凍結しない
	FrozenTime int64
	Unofficial []string
}

// Row ... 順位表の 1 行。Rank はオープン参加者だと空文字
type Row struct {
	Rank     string
	UserID   int64
	Username string
	FullName string
	Total    float64
	Penalty  int64
	Points   map[int64]float64
	Status   map[int64]Status
}

type userState struct {
	points          map[int64]float64
	lastAltering    map[int64]int64 // problem id -> 得点が変わった最後の submission id
	lastAlteringAll int64
	submissionIDs   map[int64][]int64
}

// Compute ... エクスポートした JSON から順位表を作る。
// users / problems に存在しない提出は無視する。
func Compute(doc types.ExportJSON, opts Options) []Row {
	problemPoints := map[int64]float64{}
	for _, p := range doc.Problems {
		problemPoints[p.ProblemID] = p.Points
	}

	knownUsers := map[int64]bool{}
	for _, u := range doc.Users {
		knownUsers[u.UserID] = true
	}

	submissions := make([]types.SubmissionJSON, 0, len(doc.Submissions))
	for _, s := range doc.Submissions {
		if !knownUsers[s.UserID] {
			continue
		}
		if _, ok := problemPoints[s.ProblemID]; !ok {
			continue
		}
		submissions = append(submissions, s)
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].SubmissionID < submissions[j].SubmissionID
	})

	submissionByID := make(map[int64]types.SubmissionJSON, len(submissions))
	for _, s := range submissions {
		submissionByID[s.SubmissionID] = s
	}

	final := process(doc, submissions)
	public := final
	if opts.FrozenTime > 0 {
		visible := make([]types.SubmissionJSON, 0, len(submissions))
		for _, s := range submissions {
			if s.Time < opts.FrozenTime {
				visible = append(visible, s)
			}
		}
		public = process(doc, visible)
	}

	rows := make([]Row, 0, len(doc.Users))
	for _, u := range doc.Users {
		user := public[u.UserID]
		row := Row{
			UserID:   u.UserID,
			Username: u.Username,
			Penalty:  penalty(user, submissionByID),
			Points:   map[int64]float64{},
			Status:   map[int64]Status{},
		}
		if u.FullName != nil {
			row.FullName = *u.FullName
		}

		for _, p := range doc.Problems {
			id := p.ProblemID
			row.Points[id] = user.points[id]
			row.Total += user.points[id]
			row.Status[id] = status(user, id, p.Points)

			if opts.FrozenTime > 0 && lastAlteringDiffers(user, final[u.UserID], id) {
				row.Status[id] |= Pending
			}
		}

		rows = append(rows, row)
	}

	rank(rows, opts.Unofficial)

	return rows
}

func process(doc types.ExportJSON, submissions []types.SubmissionJSON) map[int64]*userState {
	users := make(map[int64]*userState, len(doc.Users))
	for _, u := range doc.Users {
		users[u.UserID] = &userState{
			points:          map[int64]float64{},
			lastAltering:    map[int64]int64{},
			lastAlteringAll: -1,
			submissionIDs:   map[int64][]int64{},
		}
	}

	for _, s := range submissions {
		user := users[s.UserID]

		if s.Points > user.points[s.ProblemID] {
			user.points[s.ProblemID] = s.Points
			user.lastAltering[s.ProblemID] = s.SubmissionID
			user.lastAlteringAll = s.SubmissionID
		} else if s.Points == 0 && user.points[s.ProblemID] == 0 {
			user.lastAltering[s.ProblemID] = s.SubmissionID
		}

		user.submissionIDs[s.ProblemID] = append(user.submissionIDs[s.ProblemID], s.SubmissionID)
	}

	return users
}

// penalty ... 最後に得点が変わった提出の時刻 + 得点のある問題での誤答数 * PenaltyPerIncorrect
func penalty(user *userState, submissionByID map[int64]types.SubmissionJSON) int64 {
	if user.lastAlteringAll == -1 {
		return 0
	}

	incorrect := int64(0)
	for problemID, last := range user.lastAltering {
		if submissionByID[last].Points == 0 {
			continue
		}
		for _, id := range user.submissionIDs[problemID] {
			if id < last {
				incorrect++
			}
		}
	}

	return submissionByID[user.lastAlteringAll].Time + PenaltyPerIncorrect*incorrect
}

func status(user *userState, problemID int64, maxPoints float64) Status {
	if len(user.submissionIDs[problemID]) == 0 {
		return Unattempted
	}

	points := user.points[problemID]
	switch {
	case points == 0:
		return Incorrect
	case points < maxPoints:
		return Partial
	default:
		return Accepted
	}
}

func lastAlteringDiffers(public, final *userState, problemID int64) bool {
	a, okA := public.lastAltering[problemID]
	b, okB := final.lastAltering[problemID]
	return okA != okB || a != b
}

// rank ... 合計点の降順、ペナルティの昇順。同点同ペナルティは同順位
func rank(rows []Row, unofficial []string) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Penalty < rows[j].Penalty
	})

	skip := map[string]bool{}
	for _, name := range unofficial {
		skip[name] = true
	}

	lastTotal, lastPenalty := -1.0, int64(-1)
	current, count := 0, 0
	for i := range rows {
		if skip[rows[i].Username] {
			continue
		}
		count++
		if rows[i].Total != lastTotal || rows[i].Penalty != lastPenalty {
			current = count
			lastTotal = rows[i].Total
			lastPenalty = rows[i].Penalty
		}
		rows[i].Rank = strconv.Itoa(current)
	}
}

// FormatPenalty ... 秒数を HH:MM:SS にする
func FormatPenalty(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// ProblemCode ... 0 -> A, 25 -> Z, 26 -> AA
func ProblemCode(index int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var res []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		res = append([]byte{alphabet[(n-1)%26]}, res...)
	}
	return string(res)
}
