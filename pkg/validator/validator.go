package validator

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
	"github.com/dmitrymomot/fieldkit/pkg/sizes"
)

// Translator resolves a message key plus key/value interpolation arguments
// into final text. The i18n package's Localized type satisfies it.
type Translator interface {
	T(key string, args ...string) string
}

// keyTranslator is the default backend: it returns the key untouched, so
// without a catalog every outcome is a stable "{field}-{reason}" identifier.
type keyTranslator struct{}

func (keyTranslator) T(key string, _ ...string) string { return key }

// Validator accumulates constraints and one candidate value for a single
// named field, then evaluates them through one of the Validate* methods.
// It is a plain value: every setter returns an updated copy, the original
// is never mutated, and a configured Validator can be evaluated any number
// of times with identical results.
type Validator struct {
	field           string
	min             *uint
	max             *uint
	length          *uint
	fmin            *float64
	fmax            *float64
	optionList      []string
	isCaseSensitive bool
	isNull          bool
	isRequired      bool
	i32Value        *int32
	i64Value        *int64
	f32Value        *float32
	f64Value        *float64
	stringValue     string
	parentString    string
	listSizesValue  []sizes.Size
	translator      Translator
}

// New creates a Validator for the named field. The field may be any value
// renderable as a string; it becomes the prefix of every message key.
func New(field any) Validator {
	return Validator{field: fmt.Sprint(field)}
}

// WithTranslator injects the message backend. Without one, message keys are
// returned as-is.
func (v Validator) WithTranslator(tr Translator) Validator {
	v.translator = tr
	return v
}

// SetMin sets the minimum bound shared by string-length and integer checks.
func (v Validator) SetMin(min uint) Validator {
	v.min = &min
	return v
}

// SetMax sets the maximum bound shared by string-length and integer checks.
func (v Validator) SetMax(max uint) Validator {
	v.max = &max
	return v
}

// SetLen sets an exact-length constraint, used for fixed-size encoded
// payloads.
func (v Validator) SetLen(n uint) Validator {
	v.length = &n
	return v
}

// SetFMin sets the minimum bound used by the float evaluators.
func (v Validator) SetFMin(fmin float64) Validator {
	v.fmin = &fmin
	return v
}

// SetFMax sets the maximum bound used by the float evaluators.
func (v Validator) SetFMax(fmax float64) Validator {
	v.fmax = &fmax
	return v
}

// SetAsCaseSensitive controls whether option-list membership compares
// case-sensitively.
func (v Validator) SetAsCaseSensitive(isCaseSensitive bool) Validator {
	v.isCaseSensitive = isCaseSensitive
	return v
}

// SetAsNullable records whether an absent value is tolerated. The flag is
// stored for callers to consult; no evaluator acts on it.
func (v Validator) SetAsNullable(isNull bool) Validator {
	v.isNull = isNull
	return v
}

// SetAsRequired controls whether the field must carry a non-empty value.
// Most evaluators only enforce their bounds when the field is required.
func (v Validator) SetAsRequired(isRequired bool) Validator {
	v.isRequired = isRequired
	return v
}

// SetInt32Value sets the int32 candidate. Null and absent both leave the
// slot empty.
func (v Validator) SetInt32Value(n nullable.Null[int32]) Validator {
	v.i32Value = nil
	if val, ok := n.Take(); ok {
		v.i32Value = &val
	}
	return v
}

// SetInt64Value sets the int64 candidate.
func (v Validator) SetInt64Value(n nullable.Null[int64]) Validator {
	v.i64Value = nil
	if val, ok := n.Take(); ok {
		v.i64Value = &val
	}
	return v
}

// SetFloat32Value sets the float32 candidate.
func (v Validator) SetFloat32Value(n nullable.Null[float32]) Validator {
	v.f32Value = nil
	if val, ok := n.Take(); ok {
		v.f32Value = &val
	}
	return v
}

// SetFloat64Value sets the float64 candidate.
func (v Validator) SetFloat64Value(n nullable.Null[float64]) Validator {
	v.f64Value = nil
	if val, ok := n.Take(); ok {
		v.f64Value = &val
	}
	return v
}

// SetStringValue sets the string candidate. Null and absent collapse to the
// empty string, which is the canonical "no string value".
func (v Validator) SetStringValue(s nullable.Null[string]) Validator {
	v.stringValue = s.Or("")
	return v
}

// SetStringValueLower sets the string candidate lowercased.
func (v Validator) SetStringValueLower(s nullable.Null[string]) Validator {
	v.stringValue = cases.Lower(language.Und).String(s.Or(""))
	return v
}

// SetParentString sets the contextual label interpolated into
// enumeration-violation messages.
func (v Validator) SetParentString(parent any) Validator {
	v.parentString = fmt.Sprint(parent)
	return v
}

// SetOptionList replaces the allowed-options list with the string form of
// the given values. Order is preserved; duplicates are kept.
func (v Validator) SetOptionList(options ...any) Validator {
	list := make([]string, len(options))
	for i, option := range options {
		list[i] = fmt.Sprint(option)
	}
	v.optionList = list
	return v
}

// SetOptionListLower replaces the allowed-options list with the lowercased
// string form of the given values.
func (v Validator) SetOptionListLower(options ...any) Validator {
	lower := cases.Lower(language.Und)
	list := make([]string, len(options))
	for i, option := range options {
		list[i] = lower.String(fmt.Sprint(option))
	}
	v.optionList = list
	return v
}

// SetOptionListString replaces the allowed-options list, preserving the
// original case of the given strings.
func (v Validator) SetOptionListString(options ...string) Validator {
	list := make([]string, len(options))
	copy(list, options)
	v.optionList = list
	return v
}

// SetListSizesValue sets the size-list candidate. Null and absent collapse
// to an empty list.
func (v Validator) SetListSizesValue(list nullable.Null[[]sizes.Size]) Validator {
	v.listSizesValue = list.Or(nil)
	return v
}

// Field returns the field name the validator was created with.
func (v Validator) Field() string {
	return v.field
}

// IsNull reports the configured nullable flag.
func (v Validator) IsNull() bool {
	return v.isNull
}

// IsRequired reports the configured required flag.
func (v Validator) IsRequired() bool {
	return v.isRequired
}

func (v Validator) tr() Translator {
	if v.translator != nil {
		return v.translator
	}
	return keyTranslator{}
}

// key builds the "{field}-{reason}" message key every evaluator reports
// failures under.
func (v Validator) key(reason string) string {
	return v.field + "-" + reason
}

func uintArg(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func floatArg(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
