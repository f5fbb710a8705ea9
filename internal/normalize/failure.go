package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names the entity a payload is validated as.
type Kind string

const (
	KindAgent       Kind = "agent"
	KindCampaign    Kind = "campaign"
	KindCallLog     Kind = "call_log_entry"
	KindPhoneNumber Kind = "phone_number_entry"
)

// Reason is a stable failure code. Keep values stable; callers surface them to operators.
type Reason string

const (
	ReasonMissing             Reason = "MISSING"
	ReasonTypeMismatch        Reason = "TYPE_MISMATCH"
	ReasonOutOfRange          Reason = "OUT_OF_RANGE"
	ReasonInvariantViolation  Reason = "INVARIANT_VIOLATION"
	ReasonConflictingFallback Reason = "CONFLICTING_FALLBACK"
)

// ErrNotObject marks a validator invoked with something other than a JSON object.
// It is a caller defect, not a data-quality failure, and is never wrapped in Failures.
var ErrNotObject = errors.New("normalize: payload is not a JSON object")

// ValidationFailure is one field-level problem found while canonicalizing a payload.
type ValidationFailure struct {
	Kind   Kind     `json:"kind"`
	Paths  []string `json:"paths"`
	Reason Reason   `json:"reason"`
	Detail string   `json:"detail,omitempty"`
}

func (f ValidationFailure) String() string {
	s := fmt.Sprintf("%s %s: %s", f.Kind, strings.Join(f.Paths, ","), f.Reason)
	if f.Detail != "" {
		s += " (" + f.Detail + ")"
	}
	return s
}

// Failures is every problem found on a single payload. It is returned as the
// error of a validator; use AsFailures to recover it.
type Failures []ValidationFailure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "normalize: no failures"
	}
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
	}
	return "normalize: invalid payload: " + strings.Join(parts, "; ")
}

// Has reports whether a failure with reason exists on exactly the given path.
func (fs Failures) Has(reason Reason, path string) bool {
	for _, f := range fs {
		if f.Reason != reason {
			continue
		}
		for _, p := range f.Paths {
			if p == path {
				return true
			}
		}
	}
	return false
}

// AsFailures extracts Failures from err.
func AsFailures(err error) (Failures, bool) {
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}

// collector accumulates failures for one payload (fail-slow).
type collector struct {
	kind Kind
	errs Failures
}

func (c *collector) add(reason Reason, detail string, paths ...Path) {
	ps := make([]string, 0, len(paths))
	for _, p := range paths {
		ps = append(ps, p.String())
	}
	c.errs = append(c.errs, ValidationFailure{Kind: c.kind, Paths: ps, Reason: reason, Detail: detail})
}

func (c *collector) failed() bool { return len(c.errs) > 0 }

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
