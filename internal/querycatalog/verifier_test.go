package querycatalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type fakeBackend struct {
	errs    map[string]error
	checked []string
}

func (f *fakeBackend) Check(ctx context.Context, spec QuerySpec) error {
	f.checked = append(f.checked, spec.Name)
	return f.errs[spec.Name]
}

func TestVerify_ChecksInDeclarationOrder(t *testing.T) {
	b := &fakeBackend{errs: map[string]error{
		"products_by_category": errors.New("connection refused"),
	}}
	report := NewVerifier(b, nil).Verify(context.Background())

	var want []string
	for _, q := range Catalog() {
		want = append(want, q.Name)
	}
	if !reflect.DeepEqual(b.checked, want) {
		t.Errorf("checked = %v; want %v", b.checked, want)
	}
	if len(report.Results) != len(want) {
		t.Fatalf("got %d results; want %d", len(report.Results), len(want))
	}
	if report.Results[1].Outcome != Failed {
		t.Errorf("products_by_category outcome = %v; want failed", report.Results[1].Outcome)
	}
	if report.Results[2].Outcome != Ready {
		t.Error("a failure must not stop later specs")
	}
	if report.OK() {
		t.Error("report with a failure should not be OK")
	}
}

func TestVerify_IndexMissingFromMessage(t *testing.T) {
	msg := "FAILED_PRECONDITION: The query requires an index. You can create it here: " +
		"https://console.example.com/project/showcase/indexes?create_composite=abc123"
	b := &fakeBackend{errs: map[string]error{"products_active": errors.New(msg)}}

	report := NewVerifier(b, nil, ProductsActive).Verify(context.Background())

	res := report.Results[0]
	if res.Outcome != IndexMissing {
		t.Fatalf("outcome = %v; want index_missing", res.Outcome)
	}
	want := []string{"https://console.example.com/project/showcase/indexes?create_composite=abc123"}
	if !reflect.DeepEqual(res.URLs, want) {
		t.Errorf("URLs = %v; want %v", res.URLs, want)
	}
}

func TestVerify_TypedIndexMissing(t *testing.T) {
	typed := &IndexMissingError{
		Spec:       GalleryCompleted,
		URLs:       []string{"https://db.example.com/?sql=CREATE"},
		Statements: []string{GalleryCompleted.CreateIndexStatement()},
	}
	b := &fakeBackend{errs: map[string]error{"gallery_completed": fmt.Errorf("check: %w", typed)}}

	res := NewVerifier(b, nil, GalleryCompleted).Verify(context.Background()).Results[0]
	if res.Outcome != IndexMissing {
		t.Fatalf("outcome = %v; want index_missing", res.Outcome)
	}
	if !reflect.DeepEqual(res.Statements, typed.Statements) || !reflect.DeepEqual(res.URLs, typed.URLs) {
		t.Errorf("got %v %v; want %v %v", res.Statements, res.URLs, typed.Statements, typed.URLs)
	}
	if !errors.Is(res.Err, ErrFailedPrecondition) {
		t.Error("IndexMissingError should unwrap to ErrFailedPrecondition")
	}
}

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		msg  string
		want []string
	}{
		{"no links here", []string{}},
		{"create it at https://a.example/x.", []string{"https://a.example/x"}},
		{"see http://a/1 and https://b/2, then http://a/1", []string{"http://a/1", "https://b/2"}},
		{`{"link":"https://c.example/i?x=1&y=2"}`, []string{"https://c.example/i?x=1&y=2"}},
	}
	for _, tc := range tests {
		if got := ExtractURLs(tc.msg); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ExtractURLs(%q) = %v; want %v", tc.msg, got, tc.want)
		}
	}
}

func TestReport_Print(t *testing.T) {
	report := Report{Results: []Result{
		{Spec: ProductsActive, Outcome: Ready},
		{Spec: EventsActive, Outcome: IndexMissing, Statements: []string{EventsActive.CreateIndexStatement()}, URLs: []string{"https://db/?sql=x"}},
		{Spec: GalleryCompleted, Outcome: Failed, Err: errors.New("timeout")},
	}}

	var buf bytes.Buffer
	if err := report.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"products_active",
		"run:  CREATE INDEX idx_events_is_active_created_at ON events (is_active, created_at);",
		"open: https://db/?sql=x",
		"error: timeout",
		"1 ready, 1 missing, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
