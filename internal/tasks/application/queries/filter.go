// Package queries implements the task query engine: pure, stateless
// functions that derive filtered lists and calendar aggregates from task
// snapshots. The engine never mutates its input and is safe for
// concurrent callers.
package queries

import (
	"strings"
	"time"
)

// Sentinel values for FilterSpec fields. An empty string is equivalent
// to the "all" sentinel for category and status.
const (
	CategoryAll = "all"

	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// FilterSpec is the combination of constraints applied to a task
// collection. All constraints combine with logical AND; the zero value
// matches everything.
type FilterSpec struct {
	// Category excludes tasks unless their category matches exactly
	// (case-sensitive). "all" or empty imposes no constraint.
	Category string
	// Status is "all", "active" (not completed) or "completed".
	Status string
	// Search excludes tasks unless the text is found, case-insensitively,
	// in the title or the description. Empty imposes no constraint.
	Search string
	// Date excludes tasks unless their due date falls on the same local
	// calendar day. Time-of-day is ignored on both sides. Nil imposes no
	// constraint; tasks with malformed due dates never match.
	Date *time.Time
}

// NeutralSpec returns a spec that matches every task.
func NeutralSpec() FilterSpec {
	return FilterSpec{Category: CategoryAll, Status: StatusAll}
}

// EvaluateFilter returns the tasks matching the spec, preserving the
// relative order of the input. The input slice is never modified and a
// fresh slice is always returned.
func EvaluateFilter(tasks []TaskView, spec FilterSpec) []TaskView {
	matched := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, spec) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Matches reports whether a single task satisfies every constraint of
// the spec.
func Matches(t TaskView, spec FilterSpec) bool {
	if spec.Category != "" && spec.Category != CategoryAll && t.Category != spec.Category {
		return false
	}

	switch spec.Status {
	case StatusActive:
		if t.Completed {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	}

	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		inTitle := strings.Contains(strings.ToLower(t.Title), needle)
		inDescription := strings.Contains(strings.ToLower(t.Description), needle)
		if !inTitle && !inDescription {
			return false
		}
	}

	if spec.Date != nil {
		due, ok := ParseDueDate(t.DueDate)
		if !ok || !SameLocalDay(due, *spec.Date) {
			return false
		}
	}

	return true
}

// dueDateLayouts are tried in order when parsing a due date. RFC3339 is
// the canonical form; the zoneless variants cover dates entered without
// a time zone, which are interpreted in local time.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDueDate parses an ISO-8601 due date string. It reports false for
// malformed input instead of failing; callers exclude such tasks from
// date-based computations.
func ParseDueDate(s string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameLocalDay reports whether two instants fall on the same calendar
// day in the local time zone of the running process.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
