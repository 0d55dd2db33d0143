package task

// Category classifies a task for filtering and display. The set of
// recognized categories is fixed, but the type is an open string:
// unrecognized values are stored untouched and only affect display.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryUrgent   Category = "Urgent"
)

// Known reports whether the category is one of the recognized values.
func (c Category) Known() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryUrgent:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// BadgeStyle is a presentation token for a category badge.
type BadgeStyle string

const (
	BadgeBlue    BadgeStyle = "blue"
	BadgeGreen   BadgeStyle = "green"
	BadgeRed     BadgeStyle = "red"
	BadgeDefault BadgeStyle = "gray"
)

// Badge returns the display style for the category. Unknown categories
// get the default style rather than an error.
func (c Category) Badge() BadgeStyle {
	switch c {
	case CategoryWork:
		return BadgeBlue
	case CategoryPersonal:
		return BadgeGreen
	case CategoryUrgent:
		return BadgeRed
	default:
		return BadgeDefault
	}
}
