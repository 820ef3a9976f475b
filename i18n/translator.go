package i18n

import "fmt"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "condition").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unknown_condition":
			return fmt.Sprintf("条件 %q は宣言されていません", data["condition"])
		case "condition_unmet":
			return fmt.Sprintf("--%s に値が指定されましたが、必要な条件 %q を満たしていません", data["field"], data["condition"])
		case "precondition":
			return "警告にフィールド名が供給されていません"
		case "config":
			return "定義が不正です"
		}
	default: // "en"
		switch code {
		case "unknown_condition":
			return fmt.Sprintf("condition %q has not been declared", data["condition"])
		case "condition_unmet":
			return fmt.Sprintf("value provided for --%s but required condition %q not met", data["field"], data["condition"])
		case "precondition":
			return "warning was never supplied its field name"
		case "config":
			return "invalid definition"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
