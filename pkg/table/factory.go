package table

import (
	"github.com/tablekit/tablekit/pkg/config"
	"github.com/tablekit/tablekit/pkg/dialect"
)

// New builds the table variant for the configured dialect. The returned
// value satisfies SQLTable; callers that need dialect-specific
// operations type-assert to the concrete variant.
func New(name string, cfg *config.TableConfig) (SQLTable, error) {
	base, err := newTable(name, cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.Dialect {
	case dialect.MySQL:
		return newMySQLTable(base)
	case dialect.PostgreSQL:
		return newPostgreSQLTable(base)
	case dialect.SQLite:
		return newSQLiteTable(base)
	case dialect.Redshift:
		return newRedshiftTable(base)
	case dialect.Athena:
		return newAthenaTable(base)
	case dialect.Oracle:
		return newOracleTable(base)
	default:
		// newTable already resolved the dialect, so this is only
		// reachable when a dialect registers without a matching variant.
		return nil, &dialect.UnknownDialectError{
			Name:      string(cfg.Dialect),
			Available: dialect.List(),
		}
	}
}
