// Package normalize maps raw Atoms API payloads onto canonical records.
//
// Every validator is a pure function of (payload, Options): it either returns a
// record or a Failures value listing every field-level problem it found. Nothing
// here does I/O or holds state between calls, so a Normalizer is safe to share.
package normalize

import (
	"fmt"
	"strings"
)

// Options is the ambient configuration validators need. It is passed explicitly
// instead of being read from process state.
type Options struct {
	// KnownLanguages, when non-empty, restricts the language codes an agent may declare.
	KnownLanguages []string
	// BatchWorkers above 1 lets Batch validate items in parallel.
	BatchWorkers int
}

// Normalizer binds Options to the entity validators. It is immutable after New.
type Normalizer struct {
	known   map[string]struct{}
	workers int
}

func New(opts Options) *Normalizer {
	n := &Normalizer{workers: opts.BatchWorkers}
	if len(opts.KnownLanguages) > 0 {
		n.known = make(map[string]struct{}, len(opts.KnownLanguages))
		for _, code := range opts.KnownLanguages {
			code = strings.TrimSpace(code)
			if code != "" {
				n.known[code] = struct{}{}
			}
		}
	}
	return n
}

func (n *Normalizer) knownLanguage(code string) bool {
	if len(n.known) == 0 {
		return true
	}
	_, ok := n.known[code]
	return ok
}

func asPayload(raw any) (Payload, error) {
	p, ok := raw.(map[string]any)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, jsonType(raw))
	}
	return p, nil
}
