package dsl

import (
	condwarn "github.com/reoring/condwarn"
)

// FieldBuilder accumulates the options of one field descriptor. It has no
// side effects: the warning it describes is materialized when the enclosing
// record builder attaches the field, and nothing is registered until the
// record type builds.
type FieldBuilder struct {
	def        any
	hasDef     bool
	defFactory func() any

	noInit    bool
	noRepr    bool
	hash      bool
	noCompare bool
	metadata  map[string]any

	condition     string
	errorOnInvoke bool
	message       condwarn.MessageFunc
}

// Field creates a field descriptor with native defaults: included in init,
// repr and comparison, no default value, no condition.
func Field() *FieldBuilder { return &FieldBuilder{} }

// Default sets a literal default value. Mutually exclusive with
// DefaultFactory; declaring both is rejected when the record type builds.
func (f *FieldBuilder) Default(v any) *FieldBuilder {
	f.def = v
	f.hasDef = true
	return f
}

// DefaultFactory sets a per-instance default producer.
func (f *FieldBuilder) DefaultFactory(fn func() any) *FieldBuilder {
	f.defFactory = fn
	return f
}

// NoInit excludes the field from constructor generation.
func (f *FieldBuilder) NoInit() *FieldBuilder {
	f.noInit = true
	return f
}

// NoRepr excludes the field from the rendered representation.
func (f *FieldBuilder) NoRepr() *FieldBuilder {
	f.noRepr = true
	return f
}

// Hash forces the field into hashing.
func (f *FieldBuilder) Hash() *FieldBuilder {
	f.hash = true
	return f
}

// NoCompare excludes the field from comparison.
func (f *FieldBuilder) NoCompare() *FieldBuilder {
	f.noCompare = true
	return f
}

// Metadata attaches free-form metadata for downstream consumers.
func (f *FieldBuilder) Metadata(m map[string]any) *FieldBuilder {
	f.metadata = m
	return f
}

// Condition declares that the field is only meaningful when the named
// external condition holds. A value supplied while the condition is
// unsatisfied surfaces at the next Invoke of that condition.
func (f *FieldBuilder) Condition(name string) *FieldBuilder {
	f.condition = name
	return f
}

// ErrorOnInvoke makes an unsatisfied invoke fail instead of logging.
func (f *FieldBuilder) ErrorOnInvoke() *FieldBuilder {
	f.errorOnInvoke = true
	return f
}

// Message overrides the default warning template for the field's condition.
func (f *FieldBuilder) Message(fn condwarn.MessageFunc) *FieldBuilder {
	f.message = fn
	return f
}

// spec materializes the field descriptor under its declared name. Each call
// produces an independent warning instance, so one builder may describe
// several fields.
func (f *FieldBuilder) spec(name string) condwarn.FieldSpec {
	fs := condwarn.FieldSpec{
		Name:           name,
		Default:        f.def,
		HasDefault:     f.hasDef,
		DefaultFactory: f.defFactory,
		Init:           !f.noInit,
		Repr:           !f.noRepr,
		Hash:           f.hash,
		Compare:        !f.noCompare,
		Metadata:       f.metadata,
	}
	if f.condition != "" {
		fs.Warning = condwarn.NewWarning(f.condition, f.message, f.errorOnInvoke)
	}
	return fs
}
