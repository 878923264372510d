package todo

import "testing"

func TestPlanDoneTransition(t *testing.T) {
	tests := []struct {
		name    string
		current bool
		want    bool
		action  DoneAtAction
	}{
		{"open to done sets done_at", false, true, DoneAtSet},
		{"done to open clears done_at", true, false, DoneAtClear},
		{"done to done keeps done_at", true, true, DoneAtKeep},
		{"open to open keeps done_at", false, false, DoneAtKeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanDoneTransition(tt.current, tt.want); got != tt.action {
				t.Errorf("PlanDoneTransition(%v, %v) = %v, want %v", tt.current, tt.want, got, tt.action)
			}
		})
	}
}
