package i18n_test

import (
	"strings"
	"testing"

	"github.com/reoring/condwarn/i18n"
)

func TestDictTranslator_English(t *testing.T) {
	msg := i18n.T("condition_unmet", map[string]string{"field": "retries", "condition": "distributed"})
	if !strings.Contains(msg, "--retries") || !strings.Contains(msg, `"distributed"`) {
		t.Fatalf("unexpected message: %q", msg)
	}
	if got := i18n.T("unknown_condition", map[string]string{"condition": "gpu"}); !strings.Contains(got, `"gpu"`) {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestDictTranslator_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	msg := i18n.T("condition_unmet", map[string]string{"field": "retries", "condition": "distributed"})
	if !strings.Contains(msg, "--retries") || !strings.Contains(msg, "distributed") {
		t.Fatalf("unexpected ja message: %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code fallback, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return strings.ToUpper(code)
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)

	if got := i18n.T("config", nil); got != "CONFIG" {
		t.Fatalf("expected custom translator, got %q", got)
	}

	i18n.SetTranslator(nil)
	if got := i18n.T("precondition", nil); got == "PRECONDITION" {
		t.Fatalf("nil must restore the built-in translator")
	}
}
