package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafecoder-dev/contest-export/src/sqllib"
	"github.com/cafecoder-dev/contest-export/src/util"
)

// seedDB ... exportlib のテストデータで sqlite を作り、openDB をそれに向ける
func seedDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "judge.db")
	db, err := sqllib.NewDB(util.Env{DBMS: "sqlite3", DBName: path})
	require.NoError(t, err)
	seed, err := os.ReadFile("../../exportlib/testdata/seed.sql")
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(seed)).Error)
	require.NoError(t, db.Close())

	t.Setenv("DBMS", "sqlite3")
	t.Setenv("DB_NAME", path)
	t.Setenv("GCS_BUCKET", "")
}

func TestInvalidContestIDExitsWithoutTouchingDB(t *testing.T) {
	orig := openDB
	defer func() { openDB = orig }()
	openDB = func(util.Env) (*gorm.DB, error) {
		t.Fatal("database must not be opened for invalid input")
		return nil, nil
	}

	for _, input := range []string{"abc", "12a", "1.5", "０"} {
		dir := t.TempDir()
		var stdout, stderr bytes.Buffer

		code := run([]string{"--out-dir", dir, "--env", filepath.Join(dir, "none.env"), input}, strings.NewReader(""), &stdout, &stderr)

		assert.Equal(t, 1, code, input)
		assert.Contains(t, stderr.String(), util.ErrInvalidContestID.Error(), input)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, input)
	}
}

func TestInvalidContestIDFromPrompt(t *testing.T) {
	orig := openDB
	defer func() { openDB = orig }()
	openDB = func(util.Env) (*gorm.DB, error) {
		t.Fatal("database must not be opened for invalid input")
		return nil, nil
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"--out-dir", t.TempDir()}, strings.NewReader("-5\n"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Contest ID: ")
}

func TestExportFromPrompt(t *testing.T) {
	seedDB(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--out-dir", dir, "--env", filepath.Join(dir, "none.env")}, strings.NewReader(" 5 \n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	want := filepath.Join(dir, "5.json")
	assert.Contains(t, stdout.String(), "Exported: "+want)

	got, err := os.ReadFile(want)
	require.NoError(t, err)
	golden, err := os.ReadFile("../../exportlib/testdata/5.json")
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(got))
}

func TestStandingsCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"standings", "../../exportlib/testdata/5.json"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Rank", "Name", "A", "B", "C", "Score", "Time"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "bob", "0", "-", "200", "200", "02:15:00"}, strings.Fields(lines[1]))
	assert.True(t, strings.HasPrefix(lines[2], "2"))
	assert.Contains(t, lines[2], "125.25")
	assert.Contains(t, lines[2], "01:30:15")
}

func TestImagesCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.png"), []byte("gold"), 0o644))
	out := filepath.Join(t.TempDir(), "images.json")
	t.Setenv("GCS_BUCKET", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"images", dir, "--out", out, "--env", filepath.Join(dir, "none.env")}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": "data:image/png;base64,Z29sZA=="}`, string(raw))
	assert.Contains(t, stdout.String(), "Bundled 1 images")
}
