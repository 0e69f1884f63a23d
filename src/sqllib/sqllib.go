package sqllib

import (
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"

	// gorm dialects
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/cafecoder-dev/contest-export/src/util"
)

// DSN ... env から接続文字列を組み立てる。sqlite3 の場合は DB_NAME をファイルパスとして使う
func DSN(env util.Env) (string, error) {
	if env.DBMS == "sqlite3" {
		return env.DBName, nil
	}

	loc, err := time.LoadLocation(env.DBLoc)
	if err != nil {
		return "", fmt.Errorf("invalid DB_LOC %q: %w", env.DBLoc, err)
	}

	cfg := mysql.NewConfig()
	cfg.User = env.DBUser
	cfg.Passwd = env.DBPass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(env.DBHost, env.DBPort)
	cfg.DBName = env.DBName
	cfg.ParseTime = true
	cfg.Loc = loc
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// NewDB ... db の client を返す。呼び出し側で Close すること
func NewDB(env util.Env) (*gorm.DB, error) {
	dsn, err := DSN(env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(env.DBMS, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", env.DBMS, err)
	}

	return db, nil
}
