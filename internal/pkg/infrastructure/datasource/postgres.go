package datasource

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Port     string
	DBName   string
	SSLMode  string
}

func (c PostgresConfig) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func Connect(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

type postgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource reads a collection from a table with the columns (id bigserial, doc jsonb),
// keeping the order in which the rows were inserted
func NewPostgresSource(pool *pgxpool.Pool, table string) Source {
	return &postgresSource{pool: pool, table: table}
}

func (s *postgresSource) Name() string {
	return "table " + s.table
}

func (s *postgresSource) Read(ctx context.Context) ([]byte, error) {
	rows, err := s.pool.Query(ctx, selectDocumentsSQL(s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// documentRows is the part of pgx.Rows needed to read one jsonb document per row
type documentRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// collectDocuments assembles the documents of every row into a single json array
func collectDocuments(rows documentRows) ([]byte, error) {
	docs := make([]json.RawMessage, 0)

	for rows.Next() {
		var doc []byte
		err := rows.Scan(&doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return json.Marshal(docs)
}

func selectDocumentsSQL(table string) string {
	return fmt.Sprintf("SELECT doc FROM %s ORDER BY id;", pgx.Identifier{table}.Sanitize())
}
