package entities

// Action item status values. The task sheet constrains its status column to
// exactly this set via a strict choice list.
const (
	ActionItemStatusPending  = "pending"
	ActionItemStatusDone     = "done"
	ActionItemStatusAssigned = "assigned"
)

// ActionItem is one task extracted from a transcript. It has no identity
// outside its parent transcript; ownership is by containment until it is
// written into a destination row or page.
type ActionItem struct {
	Task              string `json:"task"`
	ResponsiblePerson string `json:"responsiblePerson"`
	// Deadline is dd/mm/yy. The model is instructed to synthesize
	// meeting date + 7 days when the meeting never names one; an empty
	// string is still valid downstream.
	Deadline string `json:"deadline"`
	Status   string `json:"status,omitempty"`
}
