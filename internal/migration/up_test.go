package migration

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
)

func TestVersions_Embedded(t *testing.T) {
	got, err := Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	want := []uint64{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Versions() = %v; want %v", got, want)
	}
}

func TestPreviousVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000001_a.up.sql":   {},
		"migrations/000001_a.down.sql": {},
		"migrations/000003_b.up.sql":   {},
		"migrations/000010_c.up.sql":   {},
		"migrations/README.md":         {},
	}

	tests := []struct {
		dirty   int
		want    uint64
		wantErr bool
	}{
		{dirty: 3, want: 1},
		{dirty: 10, want: 3},
		{dirty: 1, wantErr: true},
		{dirty: 7, wantErr: true},
	}
	for _, tc := range tests {
		got, err := previousVersion(fsys, tc.dirty)
		if (err != nil) != tc.wantErr {
			t.Errorf("previousVersion(%d) error = %v, wantErr %v", tc.dirty, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("previousVersion(%d) = %d; want %d", tc.dirty, got, tc.want)
		}
	}
}

// Every query the service issues must have its index created by a migration.
func TestMigrations_CreateEveryCatalogIndex(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatal(err)
	}
	var ddl strings.Builder
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		b, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			t.Fatal(err)
		}
		ddl.Write(b)
	}

	for _, q := range querycatalog.Catalog() {
		stmt := regexp.QuoteMeta(q.CreateIndexStatement())
		if !regexp.MustCompile(stmt).MatchString(ddl.String()) {
			t.Errorf("no migration creates %q", q.CreateIndexStatement())
		}
	}
}
