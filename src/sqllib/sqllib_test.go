package sqllib

import (
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafecoder-dev/contest-export/src/util"
)

func TestDSNMySQL(t *testing.T) {
	env := util.Env{
		DBMS:   "mysql",
		DBHost: "localhost",
		DBPort: "3306",
		DBUser: "dmoj",
		DBPass: "root",
		DBName: "dmoj",
		DBLoc:  "Asia/Tokyo",
	}

	dsn, err := DSN(env)
	require.NoError(t, err)
	assert.Contains(t, dsn, "charset=utf8mb4")

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "dmoj", cfg.User)
	assert.Equal(t, "root", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "localhost:3306", cfg.Addr)
	assert.Equal(t, "dmoj", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "Asia/Tokyo", cfg.Loc.String())
}

func TestDSNBadLocation(t *testing.T) {
	_, err := DSN(util.Env{DBMS: "mysql", DBLoc: "Nowhere/Special"})
	assert.Error(t, err)
}

func TestNewDBSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judge.db")

	db, err := NewDB(util.Env{DBMS: "sqlite3", DBName: path})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.DB().Ping())
}
