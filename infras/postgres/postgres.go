package postgres

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"stayhub/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 25
	connMaxLifetime    = 30 * time.Minute
)

// Connection bundles the read and write handles. Reads that must observe
// their own writes (booking creation, unit assignment) go through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(conf *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", conf, readDSN(conf)),
		Write: connect("write", conf, writeDSN(conf)),
	}
}

func dbName(conf *config.Config, base string) string {
	if conf.DB.Postgres.Prefix != "" {
		return conf.DB.Postgres.Prefix + base
	}

	return base
}

func readDSN(conf *config.Config) string {
	read := conf.DB.Postgres.Read

	return dsn(read.Username, read.Password, read.Host, read.Port, dbName(conf, read.Name), read.SSLMode)
}

func writeDSN(conf *config.Config) string {
	write := conf.DB.Postgres.Write

	return dsn(write.Username, write.Password, write.Host, write.Port, dbName(conf, write.Name), write.SSLMode)
}

func dsn(username, password, host, port, name, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		name,
		sslMode,
	)
}

func connect(name string, conf *config.Config, descriptor string) *sqlx.DB {
	waitTime := time.Duration(conf.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= conf.DB.Postgres.MaxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().
				Str("name", name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(waitTime)
	}

	log.Fatal().
		Str("name", name).
		Int("maxRetry", conf.DB.Postgres.MaxRetry).
		Msg("Exhausted database connection retries")

	return nil
}
