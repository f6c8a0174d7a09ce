package toolresp

import (
	"strings"
	"testing"
	"time"

	"github.com/bhairavmehta/MathTeacherAgent/internal/ratelimit"
)

func newTestValidator() *Validator {
	// Generous budget so rate limiting never interferes unless a test
	// wants it to.
	return New(ratelimit.New(ratelimit.Config{MaxCalls: 1000, Window: time.Minute}))
}

func TestStructuredRoundTrip(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateResponse(Text("TOOL_COMPLETION: [METHOD: number_line] [ANSWER: 8] [PROBLEM: 5 + 3]"), "s")

	if !out.IsValid {
		t.Fatalf("invalid outcome: %v", out.Errors)
	}
	if out.Data.Method != MethodNumberLine {
		t.Errorf("method = %q, want %q", out.Data.Method, MethodNumberLine)
	}
	if out.Data.Problem != "5 + 3" {
		t.Errorf("problem = %q, want %q", out.Data.Problem, "5 + 3")
	}
	if out.Data.Answer.Value != 8 || !out.Data.Answer.Integer {
		t.Errorf("answer = %+v, want integer 8", out.Data.Answer)
	}
	if !out.Data.StructuredFormat {
		t.Error("structured format flag not set")
	}
}

func TestStructuredBracketOrderIrrelevant(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateResponse(Text("TOOL_COMPLETION: done! [PROBLEM: 10 - 4] extra [METHOD: practice] words [ANSWER: 6]"), "s")

	if !out.IsValid {
		t.Fatalf("invalid outcome: %v", out.Errors)
	}
	if out.Data.Method != MethodPractice {
		t.Errorf("method = %q, want %q", out.Data.Method, MethodPractice)
	}
}

func TestStructuredMissingField(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 6]", "s")

	if out.IsValid {
		t.Fatal("outcome valid despite missing PROBLEM")
	}
	if len(out.Errors) == 0 || !strings.Contains(out.Errors[0], "Missing required fields") {
		t.Errorf("errors = %v, want missing-fields error", out.Errors)
	}
}

func TestStructuredUnknownMethodWarns(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateStructured("TOOL_COMPLETION: [METHOD: abacus] [ANSWER: 8] [PROBLEM: 5 + 3]", "s")

	if !out.IsValid {
		t.Fatalf("unknown method must not fail the message: %v", out.Errors)
	}
	if out.Data.Method != MethodUnknown {
		t.Errorf("method = %q, want %q", out.Data.Method, MethodUnknown)
	}
	if len(out.Warnings) == 0 {
		t.Error("expected a warning for unrecognized method")
	}
}

func TestStructuredBadProblemIsHardError(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 8] [PROBLEM: DROP TABLE]", "s")

	if out.IsValid {
		t.Fatal("malicious problem accepted")
	}
	if len(out.Errors) == 0 || !strings.Contains(out.Errors[0], "Invalid problem format") {
		t.Errorf("errors = %v, want problem-format error", out.Errors)
	}
}

func TestLegacyFallback(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateResponse(Text("I used the calculator to solve 5 + 3 and got 8!"), "s")

	if !out.IsValid {
		t.Fatalf("invalid outcome: %v", out.Errors)
	}
	if out.Data.StructuredFormat {
		t.Error("legacy message flagged as structured")
	}
	if out.Data.Problem != "5 + 3" {
		t.Errorf("problem = %q, want %q", out.Data.Problem, "5 + 3")
	}
	if out.Data.Answer.Value != 8 {
		t.Errorf("answer = %v, want 8", out.Data.Answer.Value)
	}
	if len(out.Warnings) == 0 || !strings.Contains(out.Warnings[0], "Legacy format") {
		t.Errorf("warnings = %v, want legacy-format warning", out.Warnings)
	}
}

// The general "solve ... and got" template is tried before the calculator
// template and shadows it for calculator phrasing; the method then degrades
// to unknown. The listed order is authoritative.
func TestLegacyTemplateOrderShadowsCalculator(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateLegacy("I used the calculator to solve 5 + 3 and got 8!", "s")

	if !out.IsValid {
		t.Fatalf("invalid outcome: %v", out.Errors)
	}
	if out.Data.Method != MethodUnknown {
		t.Errorf("method = %q, want %q (first template wins)", out.Data.Method, MethodUnknown)
	}
}

func TestLegacyNumberLineTemplate(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateLegacy("I finished the number line for 5 + 3, ending at 8", "s")

	if !out.IsValid {
		t.Fatalf("invalid outcome: %v", out.Errors)
	}
	if out.Data.Method != MethodNumberLine {
		t.Errorf("method = %q, want %q", out.Data.Method, MethodNumberLine)
	}
}

func TestLegacyNoPattern(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateLegacy("good morning teacher", "s")

	if out.IsValid {
		t.Fatal("free text without a template accepted")
	}
	if len(out.Errors) == 0 || !strings.Contains(out.Errors[0], "No recognizable response pattern") {
		t.Errorf("errors = %v, want no-pattern error", out.Errors)
	}
}

func TestBothAttemptsFailConcatenatesErrors(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateResponse(Text("good morning teacher"), "s")

	if out.IsValid {
		t.Fatal("outcome valid, want invalid")
	}
	// One error from the structured attempt, one from the legacy attempt.
	if len(out.Errors) != 2 {
		t.Fatalf("errors = %v, want 2 entries", out.Errors)
	}
	if !strings.Contains(out.Errors[0], "TOOL_COMPLETION") {
		t.Errorf("first error %q should come from the structured attempt", out.Errors[0])
	}
	if !strings.Contains(out.Errors[1], "No recognizable response pattern") {
		t.Errorf("second error %q should come from the legacy attempt", out.Errors[1])
	}
}

func TestEmptyMessage(t *testing.T) {
	v := newTestValidator()
	for _, msg := range []Message{nil, Text(""), Text("   ")} {
		out := v.ValidateResponse(msg, "s")
		if out.IsValid {
			t.Fatal("empty message accepted")
		}
		if len(out.Errors) == 0 || !strings.Contains(out.Errors[0], "No content") {
			t.Errorf("errors = %v, want no-content error", out.Errors)
		}
	}
}

func TestRateLimitRejectsBeforeParsing(t *testing.T) {
	v := New(ratelimit.New(ratelimit.Config{MaxCalls: 1, Window: time.Minute}))

	first := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 8] [PROBLEM: 5 + 3]", "s")
	if !first.IsValid {
		t.Fatalf("first call should pass: %v", first.Errors)
	}

	second := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 8] [PROBLEM: 5 + 3]", "s")
	if second.IsValid {
		t.Fatal("throttled call accepted")
	}
	if len(second.Errors) == 0 || !strings.Contains(second.Errors[0], "Rate limit exceeded") {
		t.Errorf("errors = %v, want rate-limit error", second.Errors)
	}
}

func TestEmptySessionSharesDefaultBudget(t *testing.T) {
	v := New(ratelimit.New(ratelimit.Config{MaxCalls: 1, Window: time.Minute}))

	first := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 8] [PROBLEM: 5 + 3]", "")
	if !first.IsValid {
		t.Fatalf("first call should pass: %v", first.Errors)
	}

	// An empty session id counts against the default session, not a
	// separate "" key.
	second := v.ValidateStructured("TOOL_COMPLETION: [METHOD: practice] [ANSWER: 8] [PROBLEM: 5 + 3]", DefaultSession)
	if second.IsValid {
		t.Fatal("default session should be exhausted by the empty-session call")
	}
	if len(second.Errors) == 0 || !strings.Contains(second.Errors[0], "Rate limit exceeded") {
		t.Errorf("errors = %v, want rate-limit error", second.Errors)
	}
}

func TestSecurityFlagPropagates(t *testing.T) {
	v := newTestValidator()
	out := v.ValidateResponse(Text("I managed to solve 55 and got 8 -- DROP TABLE sessions"), "s")

	if out.IsValid {
		t.Fatal("injection payload accepted")
	}
	if !out.Security {
		t.Error("security flag not set on injection outcome")
	}
}
