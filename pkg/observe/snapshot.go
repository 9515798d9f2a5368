package observe

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Snapshot encodes the record's fields as YAML, suitable for persisting
// simple application state.
func (r *Record) Snapshot() ([]byte, error) {
	data, err := yaml.Marshal(r.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// Restore decodes a YAML snapshot and applies each field through Set, so
// listeners observe every restored value. Fields are applied in name order
// to keep the event sequence deterministic. Fields present on the record
// but absent from the snapshot are left untouched.
func (r *Record) Restore(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	for _, field := range names {
		r.Set(field, fields[field])
	}
	return nil
}

// RestoreRecord builds a fresh record from a YAML snapshot produced by
// Snapshot. No events fire; the decoded fields are the initial state.
func RestoreRecord(data []byte) (*Record, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}
	return NewRecord(fields), nil
}

func decodeFields(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse record snapshot: %w", err)
	}
	return fields, nil
}
