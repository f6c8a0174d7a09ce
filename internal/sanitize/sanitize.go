// Package sanitize normalizes and validates raw learner input before it
// reaches the validators. It enforces length and character-set bounds,
// strips script blocks, and screens free text for SQL-injection signatures.
package sanitize

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Input bounds.
const (
	// MaxTextLength is the default cap for free-text input.
	MaxTextLength = 500

	// MaxExpressionLength caps math expressions. Stricter than free text:
	// a two-operand problem never needs more.
	MaxExpressionLength = 100

	// MaxAnswerLength caps the string form of a numeric answer.
	MaxAnswerLength = 20

	// MaxAnswerMagnitude bounds accepted numeric answers.
	MaxAnswerMagnitude = 1_000_000
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

	sqlInjectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|UNION)\b`),
		regexp.MustCompile(`(?i)['";]\s*(SELECT|INSERT|UPDATE|DELETE|DROP|UNION)`),
		regexp.MustCompile(`--`),
		regexp.MustCompile(`(?s)/\*.*\*/`),
	}

	// mathCharRe is the relaxed character class for math expressions. The
	// relaxed class keeps injection keywords out without rejecting operators.
	mathCharRe = regexp.MustCompile(`^[\d\s+\-*/()×÷.=?]+$`)

	// equationShapeRes are the canonical equation shapes. Expressions
	// matching one are exempt from the SQL-signature scan: operators alone
	// cannot trigger the signatures, and scanning them anyway would reject
	// legitimate problems like "5 - 3" for the bare "-".
	equationShapeRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\s*[+\-*/×÷]\s*\d+\s*=\s*\?$`), // 5 + 3 = ?
		regexp.MustCompile(`^\d+\s*[+\-*/×÷]\s*\d+$`),          // 5 + 3
		regexp.MustCompile(`^\d+\s*[+\-*/×÷]\s*\d+\s*=\s*\d+$`), // 5 + 3 = 8
		regexp.MustCompile(`^\?\s*=\s*\d+\s*[+\-*/×÷]\s*\d+$`),  // ? = 5 + 3
	}
)

// Text sanitizes a free-text input. It enforces maxLength, strips script
// blocks, HTML-escapes the remainder, and screens for SQL-injection
// signatures. Returns the trimmed text.
func Text(raw string, maxLength int) (string, error) {
	if len(raw) > maxLength {
		return "", validationErrorf("input too long: %d > %d", len(raw), maxLength)
	}

	text := scriptRe.ReplaceAllString(raw, "")
	text = html.EscapeString(text)

	for _, re := range sqlInjectionRes {
		if re.MatchString(text) {
			return "", &SecurityError{Msg: "potentially malicious content detected"}
		}
	}

	return strings.TrimSpace(text), nil
}

// MathExpression sanitizes a math-expression string. The escape/unescape
// round trip normalizes any HTML entities in the input; × and ÷ are
// normalized to * and /. The result is checked against the relaxed math
// character class, and against the SQL signatures unless it matches a
// canonical equation shape.
func MathExpression(raw string) (string, error) {
	if len(raw) > MaxExpressionLength {
		return "", validationErrorf("expression too long: %d > %d", len(raw), MaxExpressionLength)
	}

	expr := scriptRe.ReplaceAllString(raw, "")
	expr = html.UnescapeString(html.EscapeString(expr))
	expr = strings.NewReplacer("×", "*", "÷", "/").Replace(expr)

	if !mathCharRe.MatchString(expr) {
		return "", validationErrorf("invalid mathematical expression: %s", expr)
	}

	if !matchesEquationShape(expr) {
		for _, re := range sqlInjectionRes {
			if re.MatchString(expr) {
				return "", &SecurityError{Msg: "potentially malicious content detected"}
			}
		}
	}

	return strings.TrimSpace(expr), nil
}

func matchesEquationShape(expr string) bool {
	for _, re := range equationShapeRes {
		if re.MatchString(expr) {
			return true
		}
	}
	return false
}

// Number is a sanitized numeric answer. Integer reports whether the value
// was given (or parsed) as an integer rather than a decimal.
type Number struct {
	Value   float64
	Integer bool
}

// String formats the number the way the learner wrote it: no decimal point
// for integers, minimal decimal form otherwise.
func (n Number) String() string {
	if n.Integer {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// MarshalJSON emits the number as a bare JSON number, integer or decimal
// matching how the learner wrote it.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// NumericAnswer sanitizes a numeric answer given as a string. The string is
// first sanitized as short free text, then parsed as a float if it contains
// a decimal point and as an integer otherwise.
func NumericAnswer(raw string) (Number, error) {
	text, err := Text(raw, MaxAnswerLength)
	if err != nil {
		return Number{}, err
	}

	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, validationErrorf("cannot convert to number: %s", text)
		}
		return NumericValue(f)
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Number{}, validationErrorf("cannot convert to number: %s", text)
	}
	n, err := NumericValue(float64(i))
	if err != nil {
		return Number{}, err
	}
	n.Integer = true
	return n, nil
}

// NumericValue bounds-checks an answer that is already numeric.
func NumericValue(v float64) (Number, error) {
	if v > MaxAnswerMagnitude || v < -MaxAnswerMagnitude {
		return Number{}, validationErrorf("answer out of reasonable bounds: %v", v)
	}
	return Number{Value: v}, nil
}
