// Package toolresp classifies and validates tool-completion messages sent
// by front-end widgets. Messages arrive either in the structured
// TOOL_COMPLETION format or in one of the legacy free-text shapes; both
// funnel into the same sanitized Record.
package toolresp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bhairavmehta/MathTeacherAgent/internal/ratelimit"
	"github.com/bhairavmehta/MathTeacherAgent/internal/sanitize"
)

// StructuredPrefix marks a structured tool-completion message. The prefix
// and bracket field names below are load-bearing wire format; the front end
// depends on them exactly.
const StructuredPrefix = "TOOL_COMPLETION:"

// maxLegacyLength caps the whole message when falling back to legacy parsing.
const maxLegacyLength = 1000

// DefaultSession is the rate-limit and logging key used when a caller
// provides no session id.
const DefaultSession = "default"

func sessionOrDefault(id string) string {
	if id == "" {
		return DefaultSession
	}
	return id
}

var (
	methodFieldRe  = regexp.MustCompile(`\[METHOD:\s*([^\]]+)\]`)
	answerFieldRe  = regexp.MustCompile(`\[ANSWER:\s*([^\]]+)\]`)
	problemFieldRe = regexp.MustCompile(`\[PROBLEM:\s*([^\]]+)\]`)
)

// legacyPatterns are tried in order; the first match wins. The order is
// authoritative: the general "solve ... and got" template can shadow the
// calculator template, which is accepted behavior (the method then degrades
// to unknown with a warning).
var legacyPatterns = []struct {
	re     *regexp.Regexp
	method string
}{
	{regexp.MustCompile(`(?i)solve\s+([^and]+)\s+and got\s+(\d+)`), "visual_interaction"},
	{regexp.MustCompile(`(?i)calculator to solve\s+([^and]+)\s+and got\s+([^!]+)`), "calculator"},
	{regexp.MustCompile(`(?i)number line.*?(\d+\s*[+\-*/]\s*\d+).*?(\d+)`), "number_line"},
}

// Message is any inbound object exposing textual content.
type Message interface {
	Content() string
}

// Text is the trivial Message carrying a plain string.
type Text string

func (t Text) Content() string { return string(t) }

// ResponseValidator is the entry point the orchestration layer calls when
// it suspects a tool-completion message.
type ResponseValidator interface {
	ValidateResponse(msg Message, sessionID string) Outcome
}

// Validator parses and validates tool-completion messages. Construct one
// per process and pass it to request handlers; it holds no per-message
// state beyond the rate limiter.
type Validator struct {
	limiter *ratelimit.Limiter
}

// New creates a Validator. If limiter is nil a default-config limiter is
// used.
func New(limiter *ratelimit.Limiter) *Validator {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.DefaultConfig())
	}
	return &Validator{limiter: limiter}
}

// ValidateResponse is the main entry point. It extracts the message text,
// tries the structured format first, then falls back to the legacy
// templates. If both fail, the returned errors are the concatenation of
// both attempts'.
func (v *Validator) ValidateResponse(msg Message, sessionID string) Outcome {
	sessionID = sessionOrDefault(sessionID)
	if msg == nil {
		return invalid("No content found in message")
	}
	content := strings.TrimSpace(msg.Content())
	if content == "" {
		return invalid("No content found in message")
	}

	structured := v.ValidateStructured(content, sessionID)
	if structured.IsValid {
		return structured
	}

	legacy := v.ValidateLegacy(content, sessionID)
	if legacy.IsValid {
		return legacy
	}

	return Outcome{
		IsValid:  false,
		Errors:   append(structured.Errors, legacy.Errors...),
		Warnings: []string{"Multiple validation attempts failed"},
		Security: structured.Security || legacy.Security,
	}
}

// invalidErr wraps a sanitization failure into a failed Outcome, marking it
// as a security outcome when an injection signature fired.
func invalidErr(format string, err error) Outcome {
	o := invalid(fmt.Sprintf(format, err))
	var se *sanitize.SecurityError
	if errors.As(err, &se) {
		o.Security = true
	}
	return o
}

// ValidateStructured validates the TOOL_COMPLETION bracket format. Bracket
// order is irrelevant and surrounding free text is ignored, but all three
// fields must be present.
func (v *Validator) ValidateStructured(content, sessionID string) Outcome {
	if !v.limiter.IsAllowed(sessionOrDefault(sessionID)) {
		return invalid("Rate limit exceeded. Too many tool calls.")
	}

	if !strings.HasPrefix(content, StructuredPrefix) {
		return invalid("Invalid response format. Expected TOOL_COMPLETION prefix.")
	}

	methodMatch := methodFieldRe.FindStringSubmatch(content)
	answerMatch := answerFieldRe.FindStringSubmatch(content)
	problemMatch := problemFieldRe.FindStringSubmatch(content)

	if methodMatch == nil || answerMatch == nil || problemMatch == nil {
		return invalid("Missing required fields: METHOD, ANSWER, or PROBLEM")
	}

	methodStr, err := sanitize.Text(strings.TrimSpace(methodMatch[1]), sanitize.MaxTextLength)
	if err != nil {
		return invalidErr("Invalid method field: %v", err)
	}
	method := ParseMethod(methodStr)

	problem, err := sanitize.MathExpression(strings.TrimSpace(problemMatch[1]))
	if err != nil {
		return invalidErr("Invalid problem format: %v", err)
	}

	answer, err := sanitize.NumericAnswer(strings.TrimSpace(answerMatch[1]))
	if err != nil {
		return invalidErr("Invalid answer format: %v", err)
	}

	outcome := Outcome{
		IsValid: true,
		Data: &Record{
			Method:           method,
			Problem:          problem,
			Answer:           answer,
			Success:          true,
			StructuredFormat: true,
		},
	}
	if method == MethodUnknown {
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("Unrecognized tool method %q; treating as unknown", methodStr))
	}
	return outcome
}

// ValidateLegacy recovers problem and answer from the legacy free-text
// shapes. Used only when structured parsing fails.
func (v *Validator) ValidateLegacy(content, sessionID string) Outcome {
	if !v.limiter.IsAllowed(sessionOrDefault(sessionID)) {
		return invalid("Rate limit exceeded. Too many tool calls.")
	}

	text, err := sanitize.Text(content, maxLegacyLength)
	if err != nil {
		return invalidErr("Legacy validation error: %v", err)
	}

	for _, p := range legacyPatterns {
		match := p.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		problem, err := sanitize.MathExpression(strings.TrimSpace(match[1]))
		if err != nil {
			return invalidErr("Legacy format validation failed: %v", err)
		}
		answer, err := sanitize.NumericAnswer(strings.TrimSpace(match[2]))
		if err != nil {
			return invalidErr("Legacy format validation failed: %v", err)
		}

		return Outcome{
			IsValid: true,
			Data: &Record{
				Method:           ParseMethod(p.method),
				Problem:          problem,
				Answer:           answer,
				Success:          true,
				StructuredFormat: false,
			},
			Warnings: []string{"Legacy format detected. Consider upgrading to structured format."},
		}
	}

	return invalid("No recognizable response pattern found")
}
