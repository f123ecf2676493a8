package noid

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// InvalidTemplateError indicates a template that does not follow the
// "[prefix].{r|s|z}{d|e}...[k]" grammar.
type InvalidTemplateError struct {
	Template string
	Reason   string
}

func (e InvalidTemplateError) Error() string {
	if e.Template == "" && e.Reason == "" {
		return "invalid template"
	}
	return fmt.Sprintf("invalid template %q: %s", e.Template, e.Reason)
}

// Is enables errors.Is matching on InvalidTemplateError.
func (e InvalidTemplateError) Is(target error) bool {
	_, ok := target.(InvalidTemplateError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidTemplateError)
	return ok
}

// ErrInvalidTemplate is the sentinel error for unparseable templates.
var ErrInvalidTemplate = InvalidTemplateError{}

// UnsupportedGeneratorError indicates a generator mode that parses but has
// no generation logic wired in (sequential modes need a counter service).
type UnsupportedGeneratorError struct {
	Generator byte
}

func (e UnsupportedGeneratorError) Error() string {
	if e.Generator == 0 {
		return "unsupported generator"
	}
	return fmt.Sprintf("unsupported generator %q", string(e.Generator))
}

// Is enables errors.Is matching on UnsupportedGeneratorError.
func (e UnsupportedGeneratorError) Is(target error) bool {
	_, ok := target.(UnsupportedGeneratorError)
	if ok {
		return true
	}
	_, ok = target.(*UnsupportedGeneratorError)
	return ok
}

// ErrUnsupportedGenerator is the sentinel error for sequential generators.
var ErrUnsupportedGenerator = UnsupportedGeneratorError{}

// Template is a parsed NOID minting template.
type Template struct {
	// Prefix is emitted verbatim before any generated characters.
	Prefix string
	// Generator is 'r' (random), 's' (sequential) or 'z' (unlimited
	// sequential). Only 'r' can be rendered.
	Generator byte
	// Pattern is the character-class mask: 'd' draws from DigitChars,
	// 'e' from ExtendedChars.
	Pattern string
	// HasCheck appends a computed check digit after the rendered pattern.
	HasCheck bool
}

// Parse parses a template string such as ".reedede" or "f5.reedeedk".
func Parse(template string) (Template, error) {
	prefix := ""
	mask := template
	if idx := strings.Index(template, "."); idx >= 0 {
		prefix = template[:idx]
		mask = template[idx+1:]
	}

	if mask == "" {
		return Template{}, InvalidTemplateError{Template: template, Reason: "empty mask"}
	}

	gen := mask[0]
	if gen != 'r' && gen != 's' && gen != 'z' {
		return Template{}, InvalidTemplateError{Template: template, Reason: "unknown generator"}
	}

	pattern := mask[1:]
	hasCheck := strings.HasSuffix(pattern, "k")
	if hasCheck {
		pattern = pattern[:len(pattern)-1]
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'd' && pattern[i] != 'e' {
			return Template{}, InvalidTemplateError{Template: template, Reason: "unknown character class"}
		}
	}

	return Template{
		Prefix:    prefix,
		Generator: gen,
		Pattern:   pattern,
		HasCheck:  hasCheck,
	}, nil
}

// Render produces one candidate name from the template: the literal prefix,
// a cryptographically random character per pattern position, and, when the
// template carries a check flag, the check digit computed over the full
// "naan/shoulder+name" string so far.
func (t Template) Render(naan, shoulder string) (string, error) {
	if t.Generator != 'r' {
		return "", UnsupportedGeneratorError{Generator: t.Generator}
	}

	var sb strings.Builder
	sb.WriteString(t.Prefix)

	for i := 0; i < len(t.Pattern); i++ {
		alphabet := ExtendedChars
		if t.Pattern[i] == 'd' {
			alphabet = DigitChars
		}
		c, err := gonanoid.Generate(alphabet, 1)
		if err != nil {
			return "", err
		}
		sb.WriteString(c)
	}

	name := sb.String()
	if t.HasCheck {
		name += CheckDigit(naan + "/" + shoulder + name)
	}

	return name, nil
}
