// Package validator implements a field-level constraint engine: a fluent
// builder accumulates declaratively configured constraints and one typed
// candidate value for a named field, and a family of evaluators interprets
// that state into either a pass or a structured, localizable failure.
//
// # Architecture
//
// Validator is an immutable value. Every setter returns an updated copy, so
// a configured validator can be shared, re-evaluated, and chained freely;
// there is no hidden state and no goroutine hazard. Evaluators group by
// concern across files the same way rules do elsewhere in this toolkit:
// string_rules.go (string, name, simple password), password_rules.go
// (strict policy), numeric_rules.go (int32/int64/float32/float64),
// format_rules.go (base64 payloads, email), choice_rules.go (option-list
// membership), collection_rules.go (size lists).
//
// Candidate values arrive wrapped in nullable.Null so that absent,
// explicitly-null, and present values survive the trip from a decoded
// payload; the setters collapse the two empty states into "no value".
// Outcomes come back the same way: nullable.Undefined is a pass, a present
// value carries the failure. The two multi-faceted evaluators return a map
// of keyed messages (strict password) and a per-element message list (size
// lists) instead of a single string.
//
// # Messages
//
// Every failure resolves a "{field}-{reason}" key (reason being empty,
// invalid, min, max, min-max, len, or one of the password policy keys)
// through the injected Translator, passing named arguments such as min,
// max, len, options, parent, and entry. Without an injected backend the
// key itself is returned, which keeps outcomes stable identifiers in tests
// and unlocalized deployments. The i18n package's Localized type plugs in
// directly:
//
//	loc := translator.Bind("en")
//	res := validator.New("title").
//	    WithTranslator(loc).
//	    SetAsRequired(true).
//	    SetMin(3).
//	    SetMax(80).
//	    SetStringValue(title).
//	    ValidateString()
//	if msg, failed := res.Take(); failed {
//	    // msg is the localized violation text
//	}
//
// # Evaluation order
//
// Each evaluator short-circuits on the first violated check; the dominant
// order is emptiness, combined min-and-max, below-min, above-max. Numeric
// and membership bounds are only enforced while the field is required.
// Several long-standing quirks are preserved deliberately and pinned by
// regression tests: the combined min-and-max branch only fires with
// inverted bounds, and ValidateBase64Bytes reports "invalid" rather than
// "empty" for a required empty string.
package validator
