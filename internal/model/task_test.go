package model

import "testing"

var sampleTasks = []Task{
	{ID: "t1", Title: "one", Completed: false},
	{ID: "t2", Title: "two", Completed: true},
	{ID: "t3", Title: "three", Completed: false},
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"t1", "t2", "t3"}},
		{FilterActive, []string{"t1", "t3"}},
		{FilterCompleted, []string{"t2"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := tt.filter.Apply(sampleTasks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("task[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterNextCycles(t *testing.T) {
	f := FilterAll
	order := []Filter{FilterActive, FilterCompleted, FilterAll}
	for _, want := range order {
		f = f.Next()
		if f != want {
			t.Fatalf("Next() = %s, want %s", f, want)
		}
	}
}

func TestCountRemaining(t *testing.T) {
	if got := CountRemaining(sampleTasks); got != 2 {
		t.Errorf("CountRemaining = %d, want 2", got)
	}
	if got := CountRemaining(nil); got != 0 {
		t.Errorf("CountRemaining(nil) = %d, want 0", got)
	}
}

func TestStatusIcon(t *testing.T) {
	if got := (Task{Completed: true}).StatusIcon(); got != "✓" {
		t.Errorf("completed icon = %q", got)
	}
	if got := (Task{}).StatusIcon(); got != "○" {
		t.Errorf("active icon = %q", got)
	}
}
