package normalize

import (
	"golang.org/x/sync/errgroup"
)

// Validator is any single-entity validator, e.g. (*Normalizer).CallLog.
type Validator[T any] func(raw any) (T, error)

// Outcome is the result for one batch item. Exactly one of Record or Err is meaningful.
type Outcome[T any] struct {
	Index  int
	Record T
	Err    error
}

func (o Outcome[T]) OK() bool { return o.Err == nil }

// Failures returns the structured failures of a failed item, or nil when the item
// succeeded or failed with a contract error.
func (o Outcome[T]) Failures() Failures {
	fs, _ := AsFailures(o.Err)
	return fs
}

// Summary counts batch outcomes without scanning them.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BatchResult holds one outcome per input item, in input order.
type BatchResult[T any] struct {
	Outcomes []Outcome[T]
	Summary  Summary
}

// Records returns the successful records in input order.
func (b BatchResult[T]) Records() []T {
	out := make([]T, 0, b.Summary.Succeeded)
	for _, o := range b.Outcomes {
		if o.OK() {
			out = append(out, o.Record)
		}
	}
	return out
}

// Batch validates every item with v. A bad item never stops the batch and the
// result always has len(items) outcomes.
func Batch[T any](items []any, v Validator[T]) BatchResult[T] {
	return BatchParallel(items, v, 1)
}

// BatchParallel is Batch with up to workers items validated concurrently.
// Outcomes are written by index, so order never depends on scheduling.
func BatchParallel[T any](items []any, v Validator[T], workers int) BatchResult[T] {
	outcomes := make([]Outcome[T], len(items))
	if workers <= 1 {
		for i, raw := range items {
			outcomes[i] = validateOne(i, raw, v)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, raw := range items {
			i, raw := i, raw
			g.Go(func() error {
				outcomes[i] = validateOne(i, raw, v)
				return nil
			})
		}
		_ = g.Wait()
	}

	res := BatchResult[T]{Outcomes: outcomes, Summary: Summary{Total: len(items)}}
	for _, o := range outcomes {
		if o.OK() {
			res.Summary.Succeeded++
		} else {
			res.Summary.Failed++
		}
	}
	return res
}

func validateOne[T any](i int, raw any, v Validator[T]) Outcome[T] {
	rec, err := v(raw)
	if err != nil {
		return Outcome[T]{Index: i, Err: err}
	}
	return Outcome[T]{Index: i, Record: rec}
}

// Agents validates a page of agent payloads.
func (n *Normalizer) Agents(items []any) BatchResult[AgentRecord] {
	return BatchParallel[AgentRecord](items, n.Agent, n.workers)
}

// Campaigns validates a page of campaign payloads.
func (n *Normalizer) Campaigns(items []any) BatchResult[CampaignRecord] {
	return BatchParallel[CampaignRecord](items, n.Campaign, n.workers)
}

// CallLogs validates a page of call-log entries.
func (n *Normalizer) CallLogs(items []any) BatchResult[CallLogEntry] {
	return BatchParallel[CallLogEntry](items, n.CallLog, n.workers)
}

// PhoneNumbers validates a page of phone-number entries.
func (n *Normalizer) PhoneNumbers(items []any) BatchResult[PhoneNumberEntry] {
	return BatchParallel[PhoneNumberEntry](items, n.PhoneNumber, n.workers)
}
