package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are the ISO-8601 forms accepted for timestamps.
// Zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// reader coerces resolved fields of one payload, reporting every problem to its collector.
type reader struct {
	p Payload
	c *collector
}

func newReader(kind Kind, p Payload) *reader {
	return &reader{p: p, c: &collector{kind: kind}}
}

// resolve applies the fallback policy: absent, or a single agreed value.
func (r *reader) resolve(f Field, required bool) (Hit, bool) {
	res := ResolveField(r.p, f)
	if !res.Found {
		if required {
			r.c.add(ReasonMissing, "", f.Primary())
		}
		return Hit{}, false
	}
	if len(res.Conflicts) > 0 {
		paths := []Path{res.Path}
		for _, h := range res.Conflicts {
			paths = append(paths, h.Path)
		}
		r.c.add(ReasonConflictingFallback, "candidate values disagree", paths...)
		return Hit{}, false
	}
	return res.Hit, true
}

func (r *reader) mismatch(h Hit, want string) {
	r.c.add(ReasonTypeMismatch, fmt.Sprintf("expected %s, got %s", want, jsonType(h.Value)), h.Path)
}

func (r *reader) str(f Field, required bool) (string, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return "", nil, false
	}
	s, ok := h.Value.(string)
	if !ok {
		r.mismatch(h, "string")
		return "", nil, false
	}
	return s, h.Path, true
}

func (r *reader) optStr(f Field) *string {
	s, _, ok := r.str(f, false)
	if !ok {
		return nil
	}
	return &s
}

func (r *reader) number(f Field, required bool) (float64, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return 0, nil, false
	}
	n, ok := coerceNumber(h.Value)
	if !ok {
		r.mismatch(h, "number")
		return 0, nil, false
	}
	return n, h.Path, true
}

func (r *reader) integer(f Field, required bool) (int64, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return 0, nil, false
	}
	n, ok := coerceInteger(h.Value)
	if !ok {
		r.mismatch(h, "integer")
		return 0, nil, false
	}
	return n, h.Path, true
}

func (r *reader) boolean(f Field, required bool) (bool, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return false, nil, false
	}
	b, ok := h.Value.(bool)
	if !ok {
		r.mismatch(h, "boolean")
		return false, nil, false
	}
	return b, h.Path, true
}

func (r *reader) optBool(f Field) *bool {
	b, _, ok := r.boolean(f, false)
	if !ok {
		return nil
	}
	return &b
}

func (r *reader) timestamp(f Field, required bool) (time.Time, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return time.Time{}, nil, false
	}
	s, ok := h.Value.(string)
	if !ok {
		r.mismatch(h, "ISO-8601 timestamp")
		return time.Time{}, nil, false
	}
	t, err := parseTimestamp(s)
	if err != nil {
		r.c.add(ReasonTypeMismatch, err.Error(), h.Path)
		return time.Time{}, nil, false
	}
	return t, h.Path, true
}

// object resolves a nested block. present is true when the block exists at all,
// even if it has the wrong type.
func (r *reader) object(f Field, required bool) (obj Payload, present, ok bool) {
	h, found := r.resolve(f, required)
	if !found {
		return nil, false, false
	}
	m, isObj := h.Value.(map[string]any)
	if !isObj {
		r.mismatch(h, "object")
		return nil, true, false
	}
	return m, true, true
}

func (r *reader) stringList(f Field, required bool) ([]string, Path, bool) {
	h, ok := r.resolve(f, required)
	if !ok {
		return nil, nil, false
	}
	arr, isArr := h.Value.([]any)
	if !isArr {
		r.mismatch(h, "array of strings")
		return nil, nil, false
	}
	out := make([]string, 0, len(arr))
	good := true
	for i, v := range arr {
		s, isStr := v.(string)
		if !isStr {
			r.c.add(ReasonTypeMismatch, fmt.Sprintf("expected string, got %s", jsonType(v)), h.Path.Child(strconv.Itoa(i)))
			good = false
			continue
		}
		out = append(out, s)
	}
	if !good {
		return nil, nil, false
	}
	return out, h.Path, true
}

func (r *reader) url(f Field) *string {
	s, p, ok := r.str(f, false)
	if !ok {
		return nil
	}
	if err := checkURL(s); err != nil {
		r.c.add(ReasonTypeMismatch, err.Error(), p)
		return nil
	}
	return &s
}

// rangeCheck records OUT_OF_RANGE when ok is false.
func (r *reader) rangeCheck(ok bool, path Path, format string, args ...any) bool {
	if !ok {
		r.c.add(ReasonOutOfRange, fmt.Sprintf(format, args...), path)
	}
	return ok
}

func parseTimestamp(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 timestamp: %q", s)
}

func checkURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("malformed url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be http(s), got %q", s)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host: %q", s)
	}
	return nil
}

// numberOf reads JSON numbers only; strings are not numbers here.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceNumber accepts JSON numbers and decimal numeric strings.
func coerceNumber(v any) (float64, bool) {
	f, ok := numberOf(v)
	if !ok {
		s, isStr := v.(string)
		if !isStr {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if !isDecimalLiteral(s) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isDecimalLiteral reports whether s is a base-10 number with optional sign,
// fraction and exponent. ParseFloat alone also takes hex floats, Inf and NaN.
func isDecimalLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.':
		case c == 'e' || c == 'E':
			if !digits {
				return false
			}
			rest := strings.TrimLeft(s[i+1:], "+-")
			if rest == "" {
				return false
			}
			for j := 0; j < len(rest); j++ {
				if rest[j] < '0' || rest[j] > '9' {
					return false
				}
			}
			return true
		default:
			return false
		}
	}
	return digits
}

func coerceInteger(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	if s, ok := v.(string); ok {
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i, true
		}
	}
	f, ok := coerceNumber(v)
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := numberOf(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
