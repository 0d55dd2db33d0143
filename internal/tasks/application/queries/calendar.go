package queries

import "time"

// DayKeyLayout is the canonical calendar-day key format.
const DayKeyLayout = "2006-01-02"

// DayKey returns the local calendar-day key for an instant.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(DayKeyLayout)
}

// DayBucket aggregates the tasks due on a single calendar day.
type DayBucket struct {
	Total          int `json:"total"`
	CompletedCount int `json:"completedCount"`
}

// DayStatus classifies a day bucket for calendar highlighting.
type DayStatus string

const (
	// DayStatusNone means no tasks are due that day. The aggregator
	// signals it by omitting the bucket entirely; Status only reports it
	// for a zero bucket.
	DayStatusNone DayStatus = "none"
	// DayStatusAllDone means every task due that day is completed.
	DayStatusAllDone DayStatus = "all-done"
	// DayStatusPartial means some but not all tasks are completed.
	DayStatusPartial DayStatus = "partial"
	// DayStatusNoneDone means no task due that day is completed.
	DayStatusNoneDone DayStatus = "none-done"
)

// Status derives the day status from the bucket counts.
func (b DayBucket) Status() DayStatus {
	switch {
	case b.Total == 0:
		return DayStatusNone
	case b.CompletedCount == b.Total:
		return DayStatusAllDone
	case b.CompletedCount == 0:
		return DayStatusNoneDone
	default:
		return DayStatusPartial
	}
}

// BucketByDueDate groups tasks by local calendar day and counts totals
// and completions per day. Tasks with malformed due dates are skipped;
// days without tasks have no bucket.
func BucketByDueDate(tasks []TaskView) map[string]DayBucket {
	buckets := make(map[string]DayBucket)
	for _, t := range tasks {
		due, ok := ParseDueDate(t.DueDate)
		if !ok {
			continue
		}
		key := DayKey(due)
		b := buckets[key]
		b.Total++
		if t.Completed {
			b.CompletedCount++
		}
		buckets[key] = b
	}
	return buckets
}
