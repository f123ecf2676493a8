package noid

// Result reports the outcome of a check-digit validation. Expected and
// Actual are empty when the template carries no check flag or is malformed.
type Result struct {
	Valid    bool
	Expected string
	Actual   string
}

// Validate re-checks the check digit of an assigned name (the portion after
// the shoulder) against its template. The check digit covers the full ARK
// string "naan/shoulder+assignedName", not the assigned name alone.
// Templates without a check flag are vacuously valid; malformed templates
// are reported invalid.
func Validate(assignedName, template, naan, shoulder string) Result {
	t, err := Parse(template)
	if err != nil {
		return Result{Valid: false}
	}

	if !t.HasCheck {
		return Result{Valid: true}
	}

	full := naan + "/" + shoulder + assignedName
	if len(full) < 1 {
		return Result{Valid: false}
	}

	base := full[:len(full)-1]
	actual := full[len(full)-1:]
	expected := CheckDigit(base)

	return Result{
		Valid:    expected == actual,
		Expected: expected,
		Actual:   actual,
	}
}
