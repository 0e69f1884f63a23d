package types

// Verdict ... judge_submission.result の値
type Verdict string

const (
	VerdictAC  Verdict = "AC"
	VerdictWA  Verdict = "WA"
	VerdictRTE Verdict = "RTE"
	VerdictTLE Verdict = "TLE"
	VerdictMLE Verdict = "MLE"
	VerdictOLE Verdict = "OLE"
	VerdictCE  Verdict = "CE"
	VerdictIE  Verdict = "IE"
	VerdictQU  Verdict = "QU" // queued
)

// TerminalVerdicts ... 再ジャッジしない限り変わらない結果。これ以外の提出は出力しない
var TerminalVerdicts = []Verdict{VerdictAC, VerdictWA, VerdictRTE, VerdictTLE, VerdictMLE, VerdictOLE}

func (v Verdict) IsTerminal() bool {
	for _, t := range TerminalVerdicts {
		if v == t {
			return true
		}
	}
	return false
}

// TerminalVerdictStrings ... gorm の IN (?) にそのまま渡せる形
func TerminalVerdictStrings() []string {
	res := make([]string, 0, len(TerminalVerdicts))
	for _, v := range TerminalVerdicts {
		res = append(res, string(v))
	}
	return res
}
