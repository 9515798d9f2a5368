package observe

import (
	"strings"
	"testing"
)

func TestRecord_SnapshotRoundTrip(t *testing.T) {
	r := NewRecord(map[string]any{"name": "Ada", "age": 36})

	data, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	restored, err := RestoreRecord(data)
	if err != nil {
		t.Fatalf("RestoreRecord() error: %v", err)
	}
	if v, _ := restored.Get("name"); v != "Ada" {
		t.Errorf("restored name = %v; want Ada", v)
	}
	if v, _ := restored.Get("age"); v != 36 {
		t.Errorf("restored age = %v; want 36", v)
	}
}

func TestRecord_RestoreFiresListeners(t *testing.T) {
	saved := NewRecord(map[string]any{"a": 1, "b": 2})
	data, err := saved.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	r := NewRecord(map[string]any{"a": 0, "c": 3})
	var fields []string
	r.OnAny(func(field string, value, prev any) {
		fields = append(fields, field)
	})

	if err := r.Restore(data); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Fields apply in name order for a deterministic event sequence.
	if len(fields) != 2 || fields[0] != "a" || fields[1] != "b" {
		t.Errorf("restored fields = %v; want [a b]", fields)
	}
	if v, _ := r.Get("a"); v != 1 {
		t.Errorf("a = %v; want 1", v)
	}
	if v, _ := r.Get("c"); v != 3 {
		t.Errorf("c = %v; want 3 (untouched by restore)", v)
	}
}

func TestRecord_RestoreRejectsMalformedYAML(t *testing.T) {
	r := NewRecord(nil)

	err := r.Restore([]byte("{not yaml: ["))
	if err == nil {
		t.Fatal("Restore() accepted malformed YAML")
	}
	if !strings.Contains(err.Error(), "record snapshot") {
		t.Errorf("error %q does not identify the snapshot", err)
	}

	if _, err := RestoreRecord([]byte("{not yaml: [")); err == nil {
		t.Fatal("RestoreRecord() accepted malformed YAML")
	}
}
