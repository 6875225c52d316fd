package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"lodge/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection holds split read and write pools. Both may point at the same
// instance when no replica is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type target struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := target{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
	}

	write := target{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func connect(t target, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		t.username,
		t.password,
		net.JoinHostPort(t.host, t.port),
		t.dbName,
		t.sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", t.name).
				Str("host", t.host).
				Str("port", t.port).
				Str("dbName", t.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(maxIdleConnections)
			sqlDB.SetMaxOpenConns(maxOpenConnections)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", t.name).
			Str("host", t.host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
