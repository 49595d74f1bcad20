package model

// Task represents a task owned by the remote API. The client holds a cached
// copy; server-provided order is authoritative.
type Task struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	UserID      string `json:"userId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// StatusIcon returns the checkbox icon for the task
func (t Task) StatusIcon() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// Filter selects which tasks the dashboard shows
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Next cycles through the filters in display order
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Apply returns the tasks matching the filter, preserving order
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll {
		return tasks
	}
	var out []Task
	for _, t := range tasks {
		if f == FilterActive && !t.Completed {
			out = append(out, t)
		}
		if f == FilterCompleted && t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// CountRemaining returns the number of tasks not yet completed
func CountRemaining(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
