package dsl

import (
	condwarn "github.com/reoring/condwarn"
)

type recordBuilder struct {
	name    string
	parents []*condwarn.RecordType
	fields  []condwarn.FieldSpec
	opts    condwarn.RecordOptions
	hasOpts bool
	reg     *condwarn.Registry
	err     error
	built   bool
}

// Record creates a record-type builder. Build finalizes the field table and
// arms every declared warning, exactly once per type.
func Record(name string) *recordBuilder {
	return &recordBuilder{name: name}
}

// Extend merges a parent type's fields ahead of this builder's own fields.
// A field redeclared here keeps the parent's position with the new
// descriptor, matching native inheritance merging. Inherited warnings are
// cloned so the child type registers instances of its own.
func (b *recordBuilder) Extend(parent *condwarn.RecordType) *recordBuilder {
	if parent != nil {
		b.parents = append(b.parents, parent)
	}
	return b
}

// Field attaches a field descriptor under name. Declaring the same name twice
// on one builder is a config error surfaced at Build; redeclaring an
// inherited name overrides the parent's descriptor.
func (b *recordBuilder) Field(name string, f *FieldBuilder) *recordBuilder {
	if b.err != nil {
		return b
	}
	for _, fs := range b.fields {
		if fs.Name == name {
			b.err = condwarn.Issues{condwarn.Issue{
				Field:   name,
				Code:    condwarn.CodeConfig,
				Message: "field " + name + " declared twice",
			}}
			return b
		}
	}
	if f == nil {
		f = Field()
	}
	b.fields = append(b.fields, f.spec(name))
	return b
}

// Options sets the native record-generation switches carried on the finalized
// type. The default is condwarn.DefaultRecordOptions.
func (b *recordBuilder) Options(o condwarn.RecordOptions) *recordBuilder {
	b.opts = o
	b.hasOpts = true
	return b
}

// Registry directs registration at reg instead of the process-wide default.
func (b *recordBuilder) Registry(reg *condwarn.Registry) *recordBuilder {
	b.reg = reg
	return b
}

// Build finalizes the field table (inheritance merging, duplicate and default
// validation) and runs the registration hook: every field's warning receives
// the field's declared name and lands in the registry under its condition.
// A builder builds once; a second Build is a config error.
func (b *recordBuilder) Build() (*condwarn.RecordType, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, condwarn.Issues{condwarn.Issue{
			Code:    condwarn.CodeConfig,
			Message: "record type " + b.name + " already built",
		}}
	}

	merged := make([]condwarn.FieldSpec, 0, len(b.fields))
	index := map[string]int{}
	add := func(fs condwarn.FieldSpec) {
		if i, ok := index[fs.Name]; ok {
			merged[i] = fs
			return
		}
		index[fs.Name] = len(merged)
		merged = append(merged, fs)
	}
	for _, parent := range b.parents {
		for _, fs := range parent.Fields() {
			if fs.Warning != nil {
				fs.Warning = fs.Warning.Clone()
			}
			add(fs)
		}
	}
	for _, fs := range b.fields {
		add(fs)
	}

	opts := condwarn.DefaultRecordOptions()
	if b.hasOpts {
		opts = b.opts
	}
	rt, err := condwarn.NewRecordType(b.name, merged, opts)
	if err != nil {
		return nil, err
	}
	if err := condwarn.RegisterDeferredWarnings(rt, b.reg); err != nil {
		return nil, err
	}
	b.built = true
	return rt, nil
}

// MustBuild is like Build but panics on error.
func (b *recordBuilder) MustBuild() *condwarn.RecordType {
	rt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rt
}
