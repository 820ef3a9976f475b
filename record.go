package condwarn

import (
	"sync"

	"github.com/reoring/condwarn/i18n"
)

// FieldSpec is one entry of a record type's field table: the native field
// options plus an optional deferred warning. The dsl package is the usual way
// to construct one; the zero value is not meaningful (Init/Repr/Compare
// default to true there, matching native record semantics).
type FieldSpec struct {
	Name string

	// Default and DefaultFactory are mutually exclusive. HasDefault marks a
	// literal default so that an explicit nil default stays distinguishable
	// from "no default".
	Default        any
	HasDefault     bool
	DefaultFactory func() any

	Init     bool
	Repr     bool
	Hash     bool
	Compare  bool
	Metadata map[string]any

	// Warning is nil for fields that declare no condition. The registry and
	// the field share the same instance once registered; the registry is the
	// longest-lived holder.
	Warning *Warning
}

// RecordOptions mirrors the native record-generation switches (constructor,
// representation, equality, ordering, hashing, frozenness). condwarn does not
// generate any of these; it only carries the flags for the native record
// construction facility to consume alongside the field table.
type RecordOptions struct {
	Init       bool
	Repr       bool
	Eq         bool
	Order      bool
	UnsafeHash bool
	Frozen     bool
}

// DefaultRecordOptions matches the native defaults: init, repr and eq on.
func DefaultRecordOptions() RecordOptions {
	return RecordOptions{Init: true, Repr: true, Eq: true}
}

// RecordType is a finalized field table: authoritative field names in
// declaration order, after inheritance merging and default resolution.
type RecordType struct {
	name   string
	fields []FieldSpec
	opts   RecordOptions

	mu         sync.Mutex
	registered bool
}

// NewRecordType finalizes a field table. It rejects empty or duplicate field
// names and fields carrying both Default and DefaultFactory, all as config
// issues surfaced at definition time. When opt is omitted,
// DefaultRecordOptions applies.
func NewRecordType(name string, fields []FieldSpec, opt ...RecordOptions) (*RecordType, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, configIssue("", "field name must not be empty")
		}
		if _, dup := seen[f.Name]; dup {
			return nil, configIssue(f.Name, "duplicate field name")
		}
		seen[f.Name] = struct{}{}
		if f.HasDefault && f.DefaultFactory != nil {
			return nil, configIssue(f.Name, "cannot specify both default and default factory")
		}
	}
	o := DefaultRecordOptions()
	if len(opt) > 0 {
		o = opt[0]
	}
	fs := make([]FieldSpec, len(fields))
	copy(fs, fields)
	return &RecordType{name: name, fields: fs, opts: o}, nil
}

// Name returns the record type's declared name.
func (rt *RecordType) Name() string { return rt.name }

// Options returns the native record-generation switches.
func (rt *RecordType) Options() RecordOptions { return rt.opts }

// Fields returns the field table in declaration order.
func (rt *RecordType) Fields() []FieldSpec {
	out := make([]FieldSpec, len(rt.fields))
	copy(out, rt.fields)
	return out
}

// Field looks up a field by name.
func (rt *RecordType) Field(name string) (FieldSpec, bool) {
	for _, f := range rt.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Defaults resolves the default value of every field that declares one:
// literal defaults as-is, factories invoked per call.
func (rt *RecordType) Defaults() map[string]any {
	out := make(map[string]any)
	for _, f := range rt.fields {
		switch {
		case f.HasDefault:
			out[f.Name] = f.Default
		case f.DefaultFactory != nil:
			out[f.Name] = f.DefaultFactory()
		}
	}
	return out
}

// RegisterDeferredWarnings is the record post-processing hook. It walks the
// finalized field table in declaration order and, for each field carrying a
// warning, supplies the field's declared name as the message parameter and
// registers the warning into reg (nil means the default registry).
//
// The hook runs once per record type, at definition time: warnings are armed
// per type, not per instance, and the supplied parameter is the field's name,
// never a runtime value. A second call for the same type is a config error.
// The dsl builders call this automatically from Build.
func RegisterDeferredWarnings(rt *RecordType, reg *Registry) error {
	if reg == nil {
		reg = Default()
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.registered {
		return configIssue("", "record type "+rt.name+" already registered")
	}
	for _, f := range rt.fields {
		if f.Warning == nil {
			continue
		}
		f.Warning.supplyParameter(f.Name)
		reg.register(f.Warning)
	}
	rt.registered = true
	return nil
}

func configIssue(field, msg string) error {
	if msg == "" {
		msg = i18n.T(CodeConfig, nil)
	}
	return Issues{Issue{Field: field, Code: CodeConfig, Message: msg}}
}
