package validator

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
)

// ValidateListString checks that the string candidate is one of the
// configured options. A required empty string reports "empty"; a required
// value outside the list reports "invalid". Without the required flag, or
// without an option list, the check passes.
func (v Validator) ValidateListString() nullable.Null[string] {
	if v.isRequired && v.stringValue == "" {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.optionList != nil {
		if v.isRequired && !v.optionMatch() {
			return nullable.New(v.tr().T(v.key("invalid")))
		}
	}

	return nullable.Undefined[string]()
}

// ValidateListOptions applies the same membership rule as
// ValidateListString, but a violation carries the full allowed-options
// rendering as the "options" argument, plus the parent label as "parent"
// when one is configured.
func (v Validator) ValidateListOptions() nullable.Null[string] {
	if v.isRequired && v.stringValue == "" {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.optionList != nil {
		if v.isRequired && !v.optionMatch() {
			args := []string{"options", formatOptions(v.optionList)}
			if v.parentString != "" {
				args = append(args, "parent", v.parentString)
			}
			return nullable.New(v.tr().T(v.key("invalid"), args...))
		}
	}

	return nullable.Undefined[string]()
}

// optionMatch reports list membership under the configured case rule.
// The insensitive path lowercases both sides per comparison; the stored
// list is never mutated.
func (v Validator) optionMatch() bool {
	if v.isCaseSensitive {
		return slices.Contains(v.optionList, v.stringValue)
	}

	target := strings.ToLower(v.stringValue)
	for _, option := range v.optionList {
		if strings.ToLower(option) == target {
			return true
		}
	}
	return false
}

// formatOptions renders allowed values for humans: each option wrapped in
// ❛❜ marks and the sequence joined as "❛a❜, ❛b❜ and ❛c❜".
func formatOptions(options []string) string {
	wrapped := make([]string, len(options))
	for i, option := range options {
		wrapped[i] = "❛" + option + "❜"
	}

	if len(wrapped) <= 1 {
		return strings.Join(wrapped, "")
	}
	return strings.Join(wrapped[:len(wrapped)-1], ", ") + " and " + wrapped[len(wrapped)-1]
}
