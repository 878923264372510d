package todo

// DoneAtAction says what happens to done_at when the done flag is written.
type DoneAtAction int

const (
	DoneAtKeep DoneAtAction = iota
	DoneAtSet
	DoneAtClear
)

// PlanDoneTransition decides the done_at change for a done flag write.
// Re-marking a done todo as done keeps the original completion time.
func PlanDoneTransition(currentlyDone, wantDone bool) DoneAtAction {
	switch {
	case !currentlyDone && wantDone:
		return DoneAtSet
	case currentlyDone && !wantDone:
		return DoneAtClear
	default:
		return DoneAtKeep
	}
}
