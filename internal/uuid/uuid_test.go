package uuid

import (
	"encoding/json"
	"testing"
)

func TestScanValueRoundTrip(t *testing.T) {
	id := MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	v, err := id.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var got UUID
	if err := got.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got != id {
		t.Errorf("got %s; want %s", got, id)
	}
}

func TestScan_WrongType(t *testing.T) {
	var u UUID
	if err := u.Scan("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"); err == nil {
		t.Fatal("expected error scanning a string")
	}
}

func TestJSONText(t *testing.T) {
	id := MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	raw, err := json.Marshal(struct {
		ID UUID `json:"id"`
	}{id})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"id":"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}` {
		t.Errorf("json = %s", raw)
	}

	if _, err := Parse("nope"); err == nil {
		t.Error("expected parse error")
	}
	if !Nil.IsNil() || id.IsNil() {
		t.Error("IsNil mismatch")
	}
}
