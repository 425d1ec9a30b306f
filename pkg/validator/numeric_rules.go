package validator

import "github.com/dmitrymomot/fieldkit/pkg/nullable"

// Numeric evaluators share one structure: a required field with no value
// reports "empty"; the bound checks only run while the field is required.
// The combined below-min-and-above-max branch is kept for compatibility —
// it can only fire when the bounds are inverted.

// ValidateInt32 checks the int32 candidate against the min/max bounds.
func (v Validator) ValidateInt32() nullable.Null[string] {
	if v.isRequired && v.i32Value == nil {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.min != nil && v.max != nil && v.i32Value != nil {
		if v.isRequired && *v.i32Value < int32(*v.min) && *v.i32Value > int32(*v.max) {
			return nullable.New(v.tr().T(v.key("min-max"),
				"min", uintArg(*v.min),
				"max", uintArg(*v.max)))
		}
	}

	if v.min != nil && v.i32Value != nil {
		if v.isRequired && *v.i32Value < int32(*v.min) {
			return nullable.New(v.tr().T(v.key("min"), "min", uintArg(*v.min)))
		}
	}

	if v.max != nil && v.i32Value != nil {
		if v.isRequired && *v.i32Value > int32(*v.max) {
			return nullable.New(v.tr().T(v.key("max"), "max", uintArg(*v.max)))
		}
	}

	return nullable.Undefined[string]()
}

// ValidateInt64 checks the int64 candidate against the min/max bounds.
func (v Validator) ValidateInt64() nullable.Null[string] {
	if v.isRequired && v.i64Value == nil {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.min != nil && v.max != nil && v.i64Value != nil {
		if v.isRequired && *v.i64Value < int64(*v.min) && *v.i64Value > int64(*v.max) {
			return nullable.New(v.tr().T(v.key("min-max"),
				"min", uintArg(*v.min),
				"max", uintArg(*v.max)))
		}
	}

	if v.min != nil && v.i64Value != nil {
		if v.isRequired && *v.i64Value < int64(*v.min) {
			return nullable.New(v.tr().T(v.key("min"), "min", uintArg(*v.min)))
		}
	}

	if v.max != nil && v.i64Value != nil {
		if v.isRequired && *v.i64Value > int64(*v.max) {
			return nullable.New(v.tr().T(v.key("max"), "max", uintArg(*v.max)))
		}
	}

	return nullable.Undefined[string]()
}

// ValidateFloat32 checks the float32 candidate against the fmin/fmax
// bounds.
func (v Validator) ValidateFloat32() nullable.Null[string] {
	if v.isRequired && v.f32Value == nil {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.fmin != nil && v.fmax != nil && v.f32Value != nil {
		if v.isRequired && *v.f32Value < float32(*v.fmin) && *v.f32Value > float32(*v.fmax) {
			return nullable.New(v.tr().T(v.key("min-max"),
				"min", floatArg(*v.fmin),
				"max", floatArg(*v.fmax)))
		}
	}

	if v.fmin != nil && v.f32Value != nil {
		if v.isRequired && *v.f32Value < float32(*v.fmin) {
			return nullable.New(v.tr().T(v.key("min"), "min", floatArg(*v.fmin)))
		}
	}

	if v.fmax != nil && v.f32Value != nil {
		if v.isRequired && *v.f32Value > float32(*v.fmax) {
			return nullable.New(v.tr().T(v.key("max"), "max", floatArg(*v.fmax)))
		}
	}

	return nullable.Undefined[string]()
}

// ValidateFloat64 checks the float64 candidate against the fmin/fmax
// bounds.
func (v Validator) ValidateFloat64() nullable.Null[string] {
	if v.isRequired && v.f64Value == nil {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if v.fmin != nil && v.fmax != nil && v.f64Value != nil {
		if v.isRequired && *v.f64Value < *v.fmin && *v.f64Value > *v.fmax {
			return nullable.New(v.tr().T(v.key("min-max"),
				"min", floatArg(*v.fmin),
				"max", floatArg(*v.fmax)))
		}
	}

	if v.fmin != nil && v.f64Value != nil {
		if v.isRequired && *v.f64Value < *v.fmin {
			return nullable.New(v.tr().T(v.key("min"), "min", floatArg(*v.fmin)))
		}
	}

	if v.fmax != nil && v.f64Value != nil {
		if v.isRequired && *v.f64Value > *v.fmax {
			return nullable.New(v.tr().T(v.key("max"), "max", floatArg(*v.fmax)))
		}
	}

	return nullable.Undefined[string]()
}
