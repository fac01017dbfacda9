// Package jsonrepair recovers structured JSON from free-form model output.
//
// Generated content frequently arrives wrapped in prose or code fences,
// with smart quotes, trailing commas, or truncated mid-structure when the
// token budget runs out. Parse applies a fixed sequence of textual repairs
// and reports failure as a value, never a panic; callers always hold a
// fallback payload.
package jsonrepair

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError indicates the input could not be parsed even after repair.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrepairable JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse returns a valid JSON document recovered from s.
// It tries a strict parse first and escalates through the repair sequence:
// strip code fences, extract the embedded JSON span, normalize smart
// quotes, drop trailing commas, close an unterminated trailing string, and
// balance unmatched braces/brackets. Returns *ParseError when nothing
// parseable can be recovered.
func Parse(s string) (json.RawMessage, error) {
	if raw, ok := strictParse(s); ok {
		return raw, nil
	}

	cleaned := stripFences(s)
	cleaned = normalizeQuotes(cleaned)

	span, ok := extractSpan(cleaned)
	if !ok {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("no JSON object or array found")}
	}

	if raw, ok := strictParse(span); ok {
		return raw, nil
	}

	repaired := repair(span)
	if raw, ok := strictParse(repaired); ok {
		return raw, nil
	}

	return nil, &ParseError{Input: s, Err: fmt.Errorf("still invalid after repair")}
}

// Unmarshal parses s (repairing if needed) into v.
func Unmarshal(s string, v any) error {
	raw, err := Parse(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &ParseError{Input: s, Err: err}
	}
	return nil
}

func strictParse(s string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, false
	}
	return json.RawMessage(trimmed), true
}

// stripFences removes a surrounding markdown code fence, including an
// optional language tag ("```json").
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
)

func normalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// extractSpan returns the substring from the first opening brace/bracket to
// the last closing one. Truncated input with no closer keeps everything
// after the opener so repair can balance it.
func extractSpan(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexAny(s, "}]")
	if end > start {
		return s[start : end+1], true
	}
	return s[start:], true
}

// repair walks the span once, tracking string state and open containers:
// trailing commas are dropped, an unterminated trailing string is closed,
// and missing closers are appended innermost-first.
func repair(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
		case '{':
			stack = append(stack, '}')
			b.WriteByte(c)
		case '[':
			stack = append(stack, ']')
			b.WriteByte(c)
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
			}
			b.WriteByte(c)
		case ',':
			// Drop the comma when nothing but whitespace stands between it
			// and a closer or the end of input.
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j >= len(s) || s[j] == '}' || s[j] == ']' {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	if inString {
		b.WriteByte('"')
	}

	out := strings.TrimRight(b.String(), " \t\r\n")
	// Truncation can cut right after a separator: drop a dangling comma,
	// complete a dangling key with a null value.
	out = strings.TrimSuffix(out, ",")
	if strings.HasSuffix(out, ":") {
		out += "null"
	}

	for i := len(stack) - 1; i >= 0; i-- {
		out += string(stack[i])
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
