package condwarn_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	condwarn "github.com/reoring/condwarn"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := condwarn.Issues{
		{Field: "retries", Condition: "distributed", Code: condwarn.CodeConditionUnmet},
		{Condition: "gpu", Code: condwarn.CodeUnknownCondition},
		{Code: condwarn.CodeConfig, Message: "bad definition"},
		{Field: "d", Condition: "x", Code: condwarn.CodeConditionUnmet},
	}
	s := iss.Error()
	if !strings.Contains(s, condwarn.CodeConditionUnmet) || !strings.Contains(s, "--retries") {
		t.Fatalf("unexpected summary: %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected truncation note, got %q", s)
	}
	if (condwarn.Issues{}).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}

func TestAsIssues(t *testing.T) {
	iss := condwarn.Issues{{Code: condwarn.CodeConfig}}
	wrapped := fmt.Errorf("define record: %w", iss)

	got, ok := condwarn.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Code != condwarn.CodeConfig {
		t.Fatalf("expected issues through wrapping, got %v ok=%v", got, ok)
	}
	if _, ok := condwarn.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
	if _, ok := condwarn.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not yield issues")
	}
}

func TestAppendIssues(t *testing.T) {
	var iss condwarn.Issues
	iss = condwarn.AppendIssues(iss, condwarn.Issue{Code: condwarn.CodeConfig})
	iss = condwarn.AppendIssues(iss, condwarn.Issue{Code: condwarn.CodePrecondition})
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(iss))
	}
}

func TestCodePredicates(t *testing.T) {
	unmet := condwarn.Issues{{Code: condwarn.CodeConditionUnmet}}
	unknown := condwarn.Issues{{Code: condwarn.CodeUnknownCondition}}

	if !condwarn.IsConditionUnmet(unmet) || condwarn.IsConditionUnmet(unknown) {
		t.Fatalf("IsConditionUnmet misclassified")
	}
	if !condwarn.IsUnknownCondition(unknown) || condwarn.IsUnknownCondition(unmet) {
		t.Fatalf("IsUnknownCondition misclassified")
	}
	if condwarn.IsConditionUnmet(nil) || condwarn.IsUnknownCondition(errors.New("x")) {
		t.Fatalf("predicates must be false for non-issue errors")
	}
}
