package condwarn

import (
	"log/slog"

	"github.com/reoring/condwarn/i18n"
)

// MessageFunc formats the warning text for a field. The field's declared name
// is unknown when the warning is created (the field descriptor is evaluated
// before its record type is finalized), so the message is deferred behind a
// function applied once during record-type finalization.
type MessageFunc func(field string) string

// DefaultMessage returns the standard template for a condition: the rendered
// text names the field flag-style (--field) and the unmet condition.
func DefaultMessage(condition string) MessageFunc {
	return func(field string) string {
		return i18n.T(CodeConditionUnmet, map[string]string{"field": field, "condition": condition})
	}
}

// Warning is a single pending conditional check bound to one field. It is
// created when a field descriptor declares a condition, armed with the field's
// final name during record-type finalization, satisfied when external code
// reports the condition held, and invoked any number of times afterwards.
//
// Arming and satisfaction are independent: arming only supplies the message,
// satisfaction tracks whether the condition held.
type Warning struct {
	condition string
	format    MessageFunc
	errorMode bool

	satisfied bool
	armed     bool
	field     string
	message   string
}

// NewWarning constructs an unarmed, unsatisfied warning for condition.
// A nil format falls back to DefaultMessage(condition). errorMode selects
// raise-vs-log behavior at invoke time.
func NewWarning(condition string, format MessageFunc, errorMode bool) *Warning {
	if format == nil {
		format = DefaultMessage(condition)
	}
	return &Warning{condition: condition, format: format, errorMode: errorMode}
}

// Condition returns the condition key the warning is registered under.
func (w *Warning) Condition() string { return w.condition }

// ErrorMode reports whether an unsatisfied invoke fails instead of logging.
func (w *Warning) ErrorMode() bool { return w.errorMode }

// Satisfied reports whether the condition has been marked as held.
func (w *Warning) Satisfied() bool { return w.satisfied }

// Armed reports whether the field name has been supplied.
func (w *Warning) Armed() bool { return w.armed }

// Field returns the declared field name, or "" before arming.
func (w *Warning) Field() string { return w.field }

// Message returns the rendered warning text, or "" before arming.
func (w *Warning) Message() string { return w.message }

// Satisfy marks the condition as held. Idempotent.
func (w *Warning) Satisfy() { w.satisfied = true }

// Clone returns a fresh unarmed, unsatisfied warning with the same condition,
// template and error mode. Record-type inheritance clones inherited warnings
// so that each type registers instances it owns.
func (w *Warning) Clone() *Warning {
	return &Warning{condition: w.condition, format: w.format, errorMode: w.errorMode}
}

// supplyParameter arms the warning with the field's finalized name. Called
// exactly once per warning by record-type registration; a second call
// overwrites the message.
func (w *Warning) supplyParameter(field string) {
	w.field = field
	w.message = w.format(field)
	w.armed = true
}

// Invoke evaluates the pending check. A satisfied warning is a no-op. An
// unarmed warning fails with a precondition issue: it was never registered via
// record-type finalization, which is a library-integration bug. Otherwise the
// rendered message either comes back as a condition_unmet issue (error mode)
// or is emitted at Warn level through logger (nil means slog.Default()).
// Invoke does not change warning state and may be repeated indefinitely.
func (w *Warning) Invoke(logger *slog.Logger) error {
	if w.satisfied {
		return nil
	}
	if !w.armed {
		return Issues{Issue{
			Condition: w.condition,
			Code:      CodePrecondition,
			Message:   i18n.T(CodePrecondition, nil),
		}}
	}
	if w.errorMode {
		return Issues{Issue{
			Field:     w.field,
			Condition: w.condition,
			Code:      CodeConditionUnmet,
			Message:   w.message,
			Params:    map[string]any{"field": w.field, "condition": w.condition},
		}}
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(w.message, "field", w.field, "condition", w.condition)
	return nil
}
