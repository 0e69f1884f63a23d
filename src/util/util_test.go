package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContestID(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"0", 0},
		{"  42\n", 42},
		{"007", 7},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tt := range tests {
		got, err := ParseContestID(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseContestIDRejectsNonDigits(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"-1",
		"+1",
		"1.0",
		"12a",
		"1 2",
		"0x10",
		"５", // 全角数字
		"9223372036854775808",
	}

	for _, input := range inputs {
		_, err := ParseContestID(input)
		assert.ErrorIs(t, err, ErrInvalidContestID, input)
	}
}

func TestCheckRegexpInvalidPattern(t *testing.T) {
	assert.False(t, CheckRegexp(`[`, "anything"))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "judge")

	env := LoadEnv(t.TempDir() + "/missing.env")

	assert.Equal(t, "mysql", env.DBMS)
	assert.Equal(t, "db.internal", env.DBHost)
	assert.Equal(t, "3306", env.DBPort)
	assert.Equal(t, "judge", env.DBName)
	assert.Equal(t, "UTC", env.DBLoc)
	assert.Empty(t, env.GCSBucket)
}
