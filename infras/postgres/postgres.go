package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"reserve/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits traffic between the primary (Write) and a replica (Read). Both may point at the same
// server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect("write", DSN(pg.Write, pg.Prefix, nil), cfg)

	if pg.Read.Host == "" || pg.Read == pg.Write {
		log.Info().Msg("No read replica configured, reads go to the primary")

		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix, nil), cfg),
		Write: write,
	}
}

// DSN renders node as a postgres URL. Credentials are escaped. extra is merged into the query string.
func DSN(node config.PostgresNode, prefix string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries until the server answers. Running out of attempts is fatal.
func connect(role, dsn string, cfg *config.Config) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(1, pg.MaxRetry)

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)

			log.Info().Str("role", role).Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		lastErr = err

		log.Warn().Err(err).Str("role", role).Int("attempt", attempt).Int("of", attempts).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Err(lastErr).Str("role", role).Msg("Giving up connecting to database")

	return nil
}
