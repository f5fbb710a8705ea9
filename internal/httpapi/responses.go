package httpapi

import "voiceagent-bridge/internal/normalize"

type outcomeResponse[T any] struct {
	Index    int                `json:"index"`
	OK       bool               `json:"ok"`
	Record   *T                 `json:"record,omitempty"`
	Failures normalize.Failures `json:"failures,omitempty"`
	Error    string             `json:"error,omitempty"`
}

type batchResponse[T any] struct {
	Outcomes []outcomeResponse[T] `json:"outcomes"`
	Summary  normalize.Summary    `json:"summary"`
}

func toBatchResponse[T any](res normalize.BatchResult[T]) batchResponse[T] {
	out := batchResponse[T]{
		Outcomes: make([]outcomeResponse[T], 0, len(res.Outcomes)),
		Summary:  res.Summary,
	}
	for _, o := range res.Outcomes {
		r := outcomeResponse[T]{Index: o.Index, OK: o.OK()}
		if r.OK {
			rec := o.Record
			r.Record = &rec
		} else if fs := o.Failures(); fs != nil {
			r.Failures = fs
		} else {
			r.Error = o.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, r)
	}
	return out
}
