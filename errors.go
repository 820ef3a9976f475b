package condwarn

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnknownCondition: Satisfy/Invoke was given a condition no field ever
	// declared. Distinguishes "this flag does not exist" from "declared but not
	// yet satisfied", which catches typos at the call site.
	CodeUnknownCondition = "unknown_condition"
	// CodeConfig: definition-time misuse of the field/record builders
	// (Default together with DefaultFactory, duplicate field names, rebuilding
	// an already-built record type).
	CodeConfig = "config"
	// CodePrecondition: a warning was invoked before its record type was
	// finalized, so it never received its field name. Library-integration bug.
	CodePrecondition = "precondition"
	// CodeConditionUnmet: the expected user-facing failure. A value may have
	// been supplied for a conditionally-required field while its condition was
	// unmet, and the field was declared error-on-invoke.
	CodeConditionUnmet = "condition_unmet"
)

// Issue represents a single failure entry.
type Issue struct {
	Field     string // Declared field name ("" when no field applies).
	Condition string // Condition key ("" when no condition applies).
	Code      string // One of the codes listed above.
	Message   string
	// Params carries structured parameters (e.g., {"field":"retries"}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. condition_unmet at distributed/--retries
		switch {
		case it.Condition != "" && it.Field != "":
			fmt.Fprintf(b, "%s at %s/--%s", it.Code, it.Condition, it.Field)
		case it.Condition != "":
			fmt.Fprintf(b, "%s at %s", it.Code, it.Condition)
		default:
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsConditionUnmet reports whether err carries at least one condition_unmet
// issue. Callers of Invoke/InvokeAll use it to separate the expected failure
// mode from programming errors.
func IsConditionUnmet(err error) bool { return hasCode(err, CodeConditionUnmet) }

// IsUnknownCondition reports whether err carries an unknown_condition issue.
func IsUnknownCondition(err error) bool { return hasCode(err, CodeUnknownCondition) }

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
