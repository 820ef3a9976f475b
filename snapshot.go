package condwarn

import (
	"io"

	json "github.com/goccy/go-json"
)

// WarningState is a point-in-time view of one registered warning.
type WarningState struct {
	Field     string `json:"field"`
	Condition string `json:"condition"`
	Armed     bool   `json:"armed"`
	Satisfied bool   `json:"satisfied"`
	ErrorMode bool   `json:"errorMode"`
}

// ConditionState groups the warnings declared under one condition, in
// registration order.
type ConditionState struct {
	Condition string         `json:"condition"`
	Warnings  []WarningState `json:"warnings"`
}

// Snapshot is a diagnostic view of a registry: every declared condition in
// first-registration order with its warnings. It is a copy; mutating a
// snapshot does not affect the registry.
type Snapshot struct {
	Conditions []ConditionState `json:"conditions"`
}

// Snapshot captures the registry's current state for diagnostics.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := Snapshot{Conditions: make([]ConditionState, 0, len(r.order))}
	for _, key := range r.order {
		cs := ConditionState{Condition: key}
		for _, w := range r.warnings[key] {
			cs.Warnings = append(cs.Warnings, WarningState{
				Field:     w.Field(),
				Condition: w.Condition(),
				Armed:     w.Armed(),
				Satisfied: w.Satisfied(),
				ErrorMode: w.ErrorMode(),
			})
		}
		snap.Conditions = append(snap.Conditions, cs)
	}
	return snap
}

// WriteSnapshotJSON renders a registry snapshot as indented JSON, for debug
// endpoints and log attachments.
func WriteSnapshotJSON(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}
