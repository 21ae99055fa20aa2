package datasource

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SourceConfig points out where a collection is read from. Exactly one of the fields must be set.
type SourceConfig struct {
	Path  string `yaml:"path"`
	URL   string `yaml:"url"`
	Table string `yaml:"table"`
}

func (sc SourceConfig) NeedsDatabase() bool {
	return sc.Table != ""
}

// New creates the Source described by the config. A pool is only required for table sources.
func New(sc SourceConfig, pool *pgxpool.Pool) (Source, error) {
	configured := 0
	for _, s := range []string{sc.Path, sc.URL, sc.Table} {
		if s != "" {
			configured++
		}
	}

	if configured != 1 {
		return nil, fmt.Errorf("exactly one of path, url or table must be configured for a source")
	}

	switch {
	case sc.Path != "":
		return NewFileSource(sc.Path), nil
	case sc.URL != "":
		return NewHTTPSource(sc.URL), nil
	}

	if pool == nil {
		return nil, fmt.Errorf("table source %s requires a database connection", sc.Table)
	}

	return NewPostgresSource(pool, sc.Table), nil
}
