package mariadb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// erDupEntry is the server error number for a unique key violation.
const erDupEntry = 1062

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return port.ErrNotFound
	}
	return nil
}

// mapWriteErr turns a unique key violation into port.ErrDuplicate.
func mapWriteErr(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == erDupEntry {
		return fmt.Errorf("%s: %w", myErr.Message, port.ErrDuplicate)
	}
	return err
}
