package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"staff/backend/foundation/web"
	"staff/backend/internal/pkg/config"
)

type Database struct {
	*bun.DB
}

// NewConnection opens the postgres connection pool described by cfg. The
// bundebug hook is controlled by the BUNDEBUG environment variable.
func NewConnection(cfg *config.Config) *Database {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))

	return &Database{DB: db}
}

// NewDatabase wraps an already configured bun.DB. Tests use it to run the
// repositories against an in-memory store.
func NewDatabase(db *bun.DB) *Database {
	return &Database{DB: db}
}

// DeleteRow removes the row by primary key. Deleting an id that does not
// exist is not an error.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	_, err := d.NewDelete().Table(table).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting %s", table), http.StatusInternalServerError)
	}

	return nil
}

// ValidateStruct checks the named fields of s are populated: pointers must be
// non-nil, strings non-empty and ints non-zero.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, name := range requiredFields {
		field := v.FieldByName(name)
		if !field.IsValid() {
			missing = append(missing, name)
			continue
		}

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			if field.IsNil() {
				missing = append(missing, name)
			}
		case reflect.String:
			if field.String() == "" {
				missing = append(missing, name)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if field.Int() == 0 {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		return web.NewRequestError(errors.Errorf("required fields: %s", strings.Join(missing, ", ")), http.StatusBadRequest)
	}

	return nil
}
