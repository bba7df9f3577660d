// Package duck persists filter values in duckdb.
package duck

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	nt "soshiki/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS filter_values (
	source   VARCHAR NOT NULL,
	position INTEGER NOT NULL,
	name     VARCHAR NOT NULL,
	kind     VARCHAR NOT NULL,
	body     VARCHAR NOT NULL
)`

// Duck stores one row per filter, keyed by source and position.
// The key is not declared: duckdb rejects re-inserting a key deleted in the
// same transaction, and SaveFilters replaces a source's rows wholesale.
// The driver is registered by importing github.com/marcboeker/go-duckdb.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	path   string
}

// New opens the database at path, in memory when path is empty.
func New(ctx context.Context, lgr nt.Logger, path string) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to create filter_values")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
		path:   path,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the database file, or "memory".
func (dk *Duck) Name() string {
	if dk.path == "" {
		return "memory"
	}
	return dk.path
}

// SaveFilters replaces the stored filters of source.
func (dk *Duck) SaveFilters(ctx context.Context, source string, filters nt.FilterList) (err error) {

	tx, err := dk.db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin save of %s", source)
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "DELETE FROM filter_values WHERE source = ?", source)
	if err != nil {
		err = errors.Wrapf(err, "failed to clear filters of %s", source)
		return
	}

	for i, f := range filters {
		var body []byte
		body, err = nt.MarshalFilter(f)
		if err != nil {
			return
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO filter_values (source, position, name, kind, body) VALUES (?, ?, ?, ?, ?)",
			source, i, f.Label(), string(f.Kind()), string(body),
		)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert filter %q", f.Label())
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = errors.Wrapf(err, "failed to commit save of %s", source)
		return
	}

	dk.logger.Info(ctx, "saved filters", "source", source, "count", len(filters))
	return
}

// LoadFilters returns the stored filters of source in position order.
// No rows yields an empty list.
func (dk *Duck) LoadFilters(ctx context.Context, source string) (filters nt.FilterList, err error) {

	rows, err := dk.db.QueryContext(ctx,
		"SELECT kind, body FROM filter_values WHERE source = ? ORDER BY position", source,
	)
	if err != nil {
		err = errors.Wrapf(err, "failed to query filters of %s", source)
		return
	}
	defer rows.Close()

	filters = nt.FilterList{}
	for rows.Next() {
		var kind, body string
		err = rows.Scan(&kind, &body)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan filter of %s", source)
			return
		}

		var f nt.Filter
		f, err = nt.UnmarshalFilter([]byte(body))
		if err != nil {
			return
		}
		if f.Kind() != nt.Kind(kind) {
			err = errors.Errorf("filter %q stored as %s but body is %s", f.Label(), kind, f.Kind())
			return
		}

		filters = append(filters, f)
	}

	err = errors.Wrapf(rows.Err(), "failed to read filters of %s", source)
	return
}

// Sources lists the sources with stored filters.
func (dk *Duck) Sources(ctx context.Context) (sources []string, err error) {

	rows, err := dk.db.QueryContext(ctx, "SELECT DISTINCT source FROM filter_values ORDER BY source")
	if err != nil {
		err = errors.Wrapf(err, "failed to query sources")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		err = rows.Scan(&source)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan source")
			return
		}
		sources = append(sources, source)
	}

	err = errors.Wrapf(rows.Err(), "failed to read sources")
	return
}
