package calls

import "strings"

// Class groups the free-form callStatus strings reported by the call-counts log.
//
// Upstream statuses are not a closed set (e.g. "no-answer", "NO_ANSWER", "noanswer"),
// so classification is tolerant while the raw status stays untouched on the record.
type Class string

const (
	ClassQueued     Class = "queued"
	ClassRinging    Class = "ringing"
	ClassInProgress Class = "in_progress"
	ClassCompleted  Class = "completed"
	ClassFailed     Class = "failed"
	ClassNoAnswer   Class = "no_answer"
	ClassBusy       Class = "busy"
	ClassCancelled  Class = "cancelled"
	ClassUnknown    Class = "unknown"
)

var statusAliases = map[string]Class{
	"queued":      ClassQueued,
	"initiated":   ClassQueued,
	"ringing":     ClassRinging,
	"in_progress": ClassInProgress,
	"inprogress":  ClassInProgress,
	"ongoing":     ClassInProgress,
	"active":      ClassInProgress,
	"completed":   ClassCompleted,
	"complete":    ClassCompleted,
	"ended":       ClassCompleted,
	"success":     ClassCompleted,
	"failed":      ClassFailed,
	"failure":     ClassFailed,
	"error":       ClassFailed,
	"no_answer":   ClassNoAnswer,
	"noanswer":    ClassNoAnswer,
	"unanswered":  ClassNoAnswer,
	"busy":        ClassBusy,
	"cancelled":   ClassCancelled,
	"canceled":    ClassCancelled,
}

// Classify maps a raw call status onto a Class. Unrecognized values are ClassUnknown.
func Classify(status string) Class {
	key := strings.ToLower(strings.TrimSpace(status))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if c, ok := statusAliases[key]; ok {
		return c
	}
	return ClassUnknown
}

// Terminal reports whether calls in this class have finished.
func (c Class) Terminal() bool {
	switch c {
	case ClassCompleted, ClassFailed, ClassNoAnswer, ClassBusy, ClassCancelled:
		return true
	default:
		return false
	}
}

// Direction is the normalized callType.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
	DirectionWeb      Direction = "web"
	DirectionUnknown  Direction = "unknown"
)

// ClassifyDirection maps a raw callType (e.g. "outbound", "Inbound", "webcall").
func ClassifyDirection(callType string) Direction {
	t := strings.ToLower(strings.TrimSpace(callType))
	switch {
	case strings.HasPrefix(t, "inbound"):
		return DirectionInbound
	case strings.HasPrefix(t, "outbound"):
		return DirectionOutbound
	case strings.HasPrefix(t, "web"):
		return DirectionWeb
	default:
		return DirectionUnknown
	}
}
