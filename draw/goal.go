package draw

import "fmt"

type GoalIconReason int

const (
	// GoalIconUnresolved means an icon named by a goal card has no image in the input directory.
	GoalIconUnresolved GoalIconReason = iota + 1
	// GoalIconCount means a goal card does not name exactly 2 or 3 icons.
	GoalIconCount
)

func (r GoalIconReason) String() string {
	switch r {
	case GoalIconUnresolved:
		return "icon unresolved"
	case GoalIconCount:
		return "icon count out of range"
	default:
		return "unknown"
	}
}

// GoalError is returned when a goal card cannot be composed from its icons.
// The caller decides whether to abort the run or skip the card.
type GoalError struct {
	Card   string
	Reason GoalIconReason
	Token  string // unresolved icon name
	Count  int    // number of icons named
}

func (e *GoalError) Error() string {
	switch e.Reason {
	case GoalIconUnresolved:
		return fmt.Sprintf("goal %q: %s: %q", e.Card, e.Reason, e.Token)
	case GoalIconCount:
		return fmt.Sprintf("goal %q: %s: got %d, want 2 or 3", e.Card, e.Reason, e.Count)
	default:
		return fmt.Sprintf("goal %q: %s", e.Card, e.Reason)
	}
}
