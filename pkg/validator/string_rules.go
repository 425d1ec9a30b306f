package validator

import (
	"regexp"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
)

// nameRegex accepts letters from any script plus spaces, hyphens,
// interpuncts, and apostrophes. A compile failure degrades to the invalid
// outcome instead of panicking.
var nameRegex, nameRegexErr = regexp.Compile(`^[\p{L} \-・']+$`)

// ValidateString checks the string candidate for emptiness and length
// bounds. Emptiness is reported unconditionally; length bounds apply
// whenever configured, regardless of the required flag. Length is measured
// in bytes.
//
// When both bounds are set and the length is simultaneously below min and
// above max (only possible with inverted bounds), the combined "min-max"
// key is reported; otherwise the single violated bound wins.
func (v Validator) ValidateString() nullable.Null[string] {
	if v.stringValue == "" {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	length := uint(len(v.stringValue))

	switch {
	case v.min != nil && v.max != nil:
		switch {
		case length < *v.min && length > *v.max:
			return nullable.New(v.tr().T(v.key("min-max"),
				"min", uintArg(*v.min),
				"max", uintArg(*v.max)))
		case length < *v.min:
			return nullable.New(v.tr().T(v.key("min"), "min", uintArg(*v.min)))
		case length > *v.max:
			return nullable.New(v.tr().T(v.key("max"), "max", uintArg(*v.max)))
		}
	case v.min != nil:
		if length < *v.min {
			return nullable.New(v.tr().T(v.key("min"), "min", uintArg(*v.min)))
		}
	case v.max != nil:
		if length > *v.max {
			return nullable.New(v.tr().T(v.key("max"), "max", uintArg(*v.max)))
		}
	}

	return nullable.Undefined[string]()
}

// ValidateName runs ValidateString first, then requires the value to be
// made entirely of letters, spaces, hyphens, interpuncts, and apostrophes.
func (v Validator) ValidateName() nullable.Null[string] {
	if res := v.ValidateString(); res.IsValue() {
		return res
	}

	if nameRegexErr != nil || !nameRegex.MatchString(v.stringValue) {
		return nullable.New(v.tr().T(v.key("invalid")))
	}

	return nullable.Undefined[string]()
}

// ValidatePasswordSimple applies the plain string rules; use
// ValidatePasswordStrict for complexity requirements.
func (v Validator) ValidatePasswordSimple() nullable.Null[string] {
	return v.ValidateString()
}
