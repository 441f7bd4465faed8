package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
)

// IndexInspector verifies query specs against the live schema. A spec is
// backed when some index starts with its equality fields, in any order,
// immediately followed by its sort field.
type IndexInspector struct {
	db         *sql.DB
	consoleURL string
}

// compile-time check: *IndexInspector must satisfy querycatalog.Backend
var _ querycatalog.Backend = (*IndexInspector)(nil)

// NewIndexInspector builds the backend. consoleURL is the base of a DB admin
// page that accepts a sql query parameter; leave empty to report statements only.
func NewIndexInspector(db *sql.DB, consoleURL string) *IndexInspector {
	return &IndexInspector{db: db, consoleURL: consoleURL}
}

func (i *IndexInspector) Check(ctx context.Context, spec querycatalog.QuerySpec) error {
	logger.Debugf(ctx, "inspecting indexes of %q for query %s...", spec.Collection, spec.Name)

	indexes, err := i.indexes(ctx, spec.Collection)
	if err != nil {
		return fmt.Errorf("read indexes of %s: %w", spec.Collection, err)
	}

	if !backed(indexes, spec) {
		stmt := spec.CreateIndexStatement()
		missing := &querycatalog.IndexMissingError{Spec: spec, Statements: []string{stmt}}
		if u := i.remediationURL(stmt); u != "" {
			missing.URLs = []string{u}
		}
		return missing
	}

	query, args := spec.SQL("1")
	rows, err := i.db.QueryContext(ctx, query+" LIMIT 1", args...)
	if err != nil {
		return fmt.Errorf("run %s: %w", spec.Name, err)
	}
	return rows.Close()
}

func (i *IndexInspector) indexes(ctx context.Context, table string) (map[string][]string, error) {
	const query = `
      SELECT INDEX_NAME, COLUMN_NAME
      FROM information_schema.STATISTICS
      WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
      ORDER BY INDEX_NAME, SEQ_IN_INDEX
    `
	rows, err := i.db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]string)
	for rows.Next() {
		var name, column string
		if err := rows.Scan(&name, &column); err != nil {
			return nil, err
		}
		out[name] = append(out[name], strings.ToLower(column))
	}
	return out, rows.Err()
}

func (i *IndexInspector) remediationURL(stmt string) string {
	if i.consoleURL == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(i.consoleURL, "?") {
		sep = "&"
	}
	return i.consoleURL + sep + "sql=" + url.QueryEscape(stmt)
}

func backed(indexes map[string][]string, spec querycatalog.QuerySpec) bool {
	eq := spec.Fields()
	for _, cols := range indexes {
		if len(cols) <= len(eq) {
			continue
		}
		if !sameSet(cols[:len(eq)], eq) {
			continue
		}
		if cols[len(eq)] == spec.SortField {
			return true
		}
	}
	return false
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}
