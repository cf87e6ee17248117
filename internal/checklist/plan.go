package checklist

// DeletionPlan holds line indices of one snapshot in strictly descending order.
// Applying it top-down would shift later indices, so callers must keep the order.
type DeletionPlan []int

// NewPlan scans lines and returns the matches highest index first.
func NewPlan(lines []string) DeletionPlan {
	asc := Scan(lines)
	plan := make(DeletionPlan, len(asc))
	for i, idx := range asc {
		plan[len(asc)-1-i] = idx
	}
	return plan
}

// PlanText is NewPlan over text split with Lines.
func PlanText(text string) DeletionPlan {
	return NewPlan(Lines(text))
}

func (p DeletionPlan) Len() int    { return len(p) }
func (p DeletionPlan) Empty() bool { return len(p) == 0 }
