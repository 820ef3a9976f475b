package condwarn_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	condwarn "github.com/reoring/condwarn"
)

func TestRegistry_Snapshot(t *testing.T) {
	reg := condwarn.NewRegistry()
	defineType(t, reg, "Job", "retries", "distributed", true)
	defineType(t, reg, "Task", "device", "gpu", false)
	if err := reg.Satisfy("gpu"); err != nil {
		t.Fatalf("satisfy: %v", err)
	}

	snap := reg.Snapshot()
	if len(snap.Conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(snap.Conditions))
	}
	if snap.Conditions[0].Condition != "distributed" || snap.Conditions[1].Condition != "gpu" {
		t.Fatalf("expected first-registration order, got %+v", snap.Conditions)
	}
	d := snap.Conditions[0].Warnings[0]
	if d.Field != "retries" || !d.Armed || d.Satisfied || !d.ErrorMode {
		t.Fatalf("unexpected distributed state: %+v", d)
	}
	g := snap.Conditions[1].Warnings[0]
	if g.Field != "device" || !g.Satisfied || g.ErrorMode {
		t.Fatalf("unexpected gpu state: %+v", g)
	}
}

func TestWriteSnapshotJSON(t *testing.T) {
	reg := condwarn.NewRegistry()
	defineType(t, reg, "Job", "retries", "distributed", true)

	buf := &bytes.Buffer{}
	if err := condwarn.WriteSnapshotJSON(buf, reg); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	var snap condwarn.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("snapshot must round-trip as JSON: %v", err)
	}
	if len(snap.Conditions) != 1 || snap.Conditions[0].Warnings[0].Field != "retries" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
