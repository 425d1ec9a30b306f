package validator

import (
	"regexp"
	"strconv"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 64
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)

	// Zero-or-more on purpose: the checks must also fire for the empty
	// string, where "all characters alphabetic" holds vacuously.
	allAlphaRegex        = regexp.MustCompile(`^[a-zA-Z]*$`)
	allAlphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
)

// ValidatePasswordStrict checks the string candidate against the strict
// complexity policy. Unlike the single-message evaluators it does not stop
// at the first fault: every unmet requirement contributes its own keyed
// message, so the caller can surface all problems at once. The returned map
// holds any subset of the keys minimum, maximum, lowercase, uppercase,
// number, and symbol.
//
// The number check fires when the value is entirely ASCII-alphabetic, the
// symbol check when it is entirely ASCII-alphanumeric. Length is measured
// in bytes.
func (v Validator) ValidatePasswordStrict() nullable.Null[map[string]string] {
	length := len(v.stringValue)
	issues := make(map[string]string)

	if length < passwordMinLength {
		issues["minimum"] = v.tr().T(v.key("minimum"), "min", strconv.Itoa(passwordMinLength))
	}
	if length > passwordMaxLength {
		issues["maximum"] = v.tr().T(v.key("maximum"), "max", strconv.Itoa(passwordMaxLength))
	}
	if !lowercaseRegex.MatchString(v.stringValue) {
		issues["lowercase"] = v.tr().T(v.key("lowercase"))
	}
	if !uppercaseRegex.MatchString(v.stringValue) {
		issues["uppercase"] = v.tr().T(v.key("uppercase"))
	}
	if allAlphaRegex.MatchString(v.stringValue) {
		issues["number"] = v.tr().T(v.key("number"))
	}
	if allAlphanumericRegex.MatchString(v.stringValue) {
		issues["symbol"] = v.tr().T(v.key("symbol"))
	}

	if len(issues) == 0 {
		return nullable.Undefined[map[string]string]()
	}
	return nullable.New(issues)
}
