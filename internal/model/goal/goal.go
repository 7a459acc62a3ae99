package goal

// FinancialGoal is a savings target tracked in the remote store. The store
// assigns ID at creation; Saved is the only field mutated afterwards.
type FinancialGoal struct {
	ID             string  `json:"id" firestore:"-"`
	Name           string  `json:"name"`
	Target         float64 `json:"target"`
	DurationMonths int     `json:"durationMonths"`
	Saved          float64 `json:"saved"`
}

// Progress returns the display ratio Saved/Target, capped at 1.0. The stored
// Saved value is never clamped; only the presented ratio is.
func (g FinancialGoal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Saved / g.Target
	if p > 1.0 {
		return 1.0
	}
	return p
}
