package sqlstore

import (
	"fmt"
	"net"
	"strings"
	"time"

	"counterhub/config"
	"counterhub/internal/errors"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Supported dialect names, matching database.type.
const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

func newDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Type {
	case DialectMySQL:
		return mysql.Open(mysqlDSN(cfg.MySQL, cfg.Pool.AcquireTimeout)), nil
	case DialectPostgres:
		return postgres.New(postgres.Config{DSN: postgresDSN(cfg.Postgres, cfg.Pool.AcquireTimeout)}), nil
	case DialectSQLite:
		return sqlite.Open(sqliteDSN(cfg.SQLite.Path)), nil
	default:
		return nil, errors.Errorf("unsupported relational dialect: %s", cfg.Type)
	}
}

func mysqlDSN(cfg config.SQLServer, dialTimeout time.Duration) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	driverCfg := mysqldriver.NewConfig()
	driverCfg.User = cfg.UserName
	driverCfg.Passwd = cfg.Password
	driverCfg.Net = "tcp"
	driverCfg.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	driverCfg.DBName = cfg.Name
	driverCfg.ParseTime = true
	driverCfg.Loc = time.UTC
	driverCfg.Timeout = dialTimeout
	driverCfg.Params = map[string]string{"charset": "utf8mb4"}

	return driverCfg.FormatDSN()
}

func postgresDSN(cfg config.SQLServer, dialTimeout time.Duration) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	parts := []string{
		"host=" + quoteDSNValue(cfg.Host),
		"port=" + quoteDSNValue(cfg.Port),
		"user=" + quoteDSNValue(cfg.UserName),
		"password=" + quoteDSNValue(cfg.Password),
		"dbname=" + quoteDSNValue(cfg.Name),
		"sslmode=" + quoteDSNValue(cfg.SSLMode),
		"TimeZone=UTC",
	}
	if dialTimeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", max(int(dialTimeout.Seconds()), 1)))
	}

	return strings.Join(parts, " ")
}

// quoteDSNValue quotes a libpq keyword value when it is empty or contains spaces or quotes.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(v) + "'"
}

// sqliteDSN enables foreign keys and a busy timeout unless the path already sets pragmas.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
