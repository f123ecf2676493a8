package arkpid

import (
	"fmt"
	"strings"
)

// MalformedIdentifierError indicates an identifier with fewer than two
// slash-delimited segments.
type MalformedIdentifierError struct {
	Raw string
}

func (e MalformedIdentifierError) Error() string {
	if e.Raw == "" {
		return "malformed identifier"
	}
	return fmt.Sprintf("malformed identifier: %q", e.Raw)
}

// Is enables errors.Is matching on MalformedIdentifierError.
func (e MalformedIdentifierError) Is(target error) bool {
	_, ok := target.(MalformedIdentifierError)
	if ok {
		return true
	}
	_, ok = target.(*MalformedIdentifierError)
	return ok
}

// ErrMalformedIdentifier is the sentinel error for malformed identifiers.
var ErrMalformedIdentifier = MalformedIdentifierError{}

// InvalidAuthorityError indicates a NAAN segment that is not a plain
// non-negative decimal integer.
type InvalidAuthorityError struct {
	NAAN string
}

func (e InvalidAuthorityError) Error() string {
	if e.NAAN == "" {
		return "invalid authority number"
	}
	return fmt.Sprintf("invalid authority number: %q", e.NAAN)
}

// Is enables errors.Is matching on InvalidAuthorityError.
func (e InvalidAuthorityError) Is(target error) bool {
	_, ok := target.(InvalidAuthorityError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidAuthorityError)
	return ok
}

// ErrInvalidAuthority is the sentinel error for invalid authority numbers.
var ErrInvalidAuthority = InvalidAuthorityError{}

// ParseARK splits a raw ARK identifier into its authority number, assigned
// name and opaque suffix. The input is expected without the "ark:/" scheme
// prefix, e.g. "18474/b2r20t674/some/suffix".
func ParseARK(raw string) (naan string, assignedName string, suffix string, err error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 2 {
		return "", "", "", MalformedIdentifierError{Raw: raw}
	}

	naan, assignedName = parts[0], parts[1]

	// Everything past "naan/assignedName", with its leading slash stripped.
	suffix = raw[len(naan)+len(assignedName)+1:]
	suffix = strings.TrimPrefix(suffix, "/")

	if !isDecimalNAAN(naan) {
		return "", "", "", InvalidAuthorityError{NAAN: naan}
	}

	return naan, assignedName, suffix, nil
}

// ComposeARK joins an authority number and assigned name into the canonical
// lookup key.
func ComposeARK(naan, assignedName string) string {
	return naan + "/" + assignedName
}

// isDecimalNAAN reports whether s is a non-negative base-10 integer without
// sign characters or leading zeros. "0" alone is valid.
func isDecimalNAAN(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	return true
}
