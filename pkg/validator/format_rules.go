package validator

import (
	"encoding/base64"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
)

// ValidateBase64Bytes checks that the string candidate is a URL-safe base64
// payload decoding to exactly the configured length. A required empty
// string reports the "invalid" key — a historical asymmetry with the other
// evaluators' "empty" that existing message catalogs rely on. Strings that
// fail to decode are not reported; only a successful decode of the wrong
// length is.
func (v Validator) ValidateBase64Bytes() nullable.Null[string] {
	if v.isRequired && v.stringValue == "" {
		return nullable.New(v.tr().T(v.key("invalid")))
	}

	if v.length != nil {
		if decoded, err := base64.RawURLEncoding.DecodeString(v.stringValue); err == nil {
			if uint(len(decoded)) != *v.length {
				return nullable.New(v.tr().T(v.key("len"), "len", uintArg(*v.length)))
			}
		}
	}

	return nullable.Undefined[string]()
}

// ValidateEmail checks that the string candidate is present and
// syntactically a valid email address.
func (v Validator) ValidateEmail() nullable.Null[string] {
	if v.stringValue == "" {
		return nullable.New(v.tr().T(v.key("empty")))
	}

	if !isValidEmail(v.stringValue) {
		return nullable.New(v.tr().T(v.key("invalid")))
	}

	return nullable.Undefined[string]()
}

// isValidEmail combines RFC 5322 parsing with the stricter domain shape
// expected in web forms: a bare local part and a dotted domain, no display
// names, no trailing dots.
func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
