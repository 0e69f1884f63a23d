package util

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidContestID ... contest id が数字だけでできていない
var ErrInvalidContestID = errors.New("contest id must be a non-negative integer")

const contestIDPattern = `^[0-9]+$`

// ParseContestID ... 入力を検証して contest id を返す。DB に触る前に呼ぶこと
func ParseContestID(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if !CheckRegexp(contestIDPattern, s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidContestID, input)
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// 桁あふれ
		return 0, fmt.Errorf("%w: %q", ErrInvalidContestID, input)
	}

	return id, nil
}

func CheckRegexp(reg, str string) bool {
	compiled, err := regexp.Compile(reg)
	if err != nil {
		return false
	}

	return compiled.MatchString(str)
}
