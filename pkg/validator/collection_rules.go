package validator

import "github.com/dmitrymomot/fieldkit/pkg/nullable"

// ValidateListSizes checks every element of the size-list candidate. A
// required empty list reports one "empty" message; each element with an
// unknown scale or orientation, or a non-positive dimension, contributes
// its own "invalid" message carrying the serialized element as the "entry"
// argument. Faults accumulate rather than short-circuiting. Without the
// required flag the check passes.
func (v Validator) ValidateListSizes() nullable.Null[[]string] {
	var errs []string

	if v.isRequired && len(v.listSizesValue) == 0 {
		errs = append(errs, v.tr().T(v.key("empty")))
	}

	if v.isRequired && len(v.listSizesValue) > 0 {
		for _, size := range v.listSizesValue {
			if size.Scale.Valid() && size.Orientation.Valid() && size.Width > 0 && size.Height > 0 {
				continue
			}
			errs = append(errs, v.tr().T(v.key("invalid"), "entry", size.String()))
		}
	}

	if len(errs) == 0 {
		return nullable.Undefined[[]string]()
	}
	return nullable.New(errs)
}
