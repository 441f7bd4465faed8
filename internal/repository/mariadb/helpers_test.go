package mariadb

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
		_ = sqlDB.Close()
	})
	return sqlDB, mock
}

func idBytes(id uuid.UUID) []byte {
	v, _ := id.Value()
	return v.([]byte)
}
