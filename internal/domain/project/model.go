package project

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
)

// Status represents the lifecycle state of a project. Only StatusOpen
// is ever produced by the posting workflow; the other states exist for
// the data model's sake.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// currencyLabel suffixes every rendered budget.
const currencyLabel = "ريال"

// Project is a posted construction project open for bids.
//
// BudgetFormatted is a snapshot: rendered once at creation from Budget
// and never recomputed. Projects are not editable, so the two cannot
// drift.
type Project struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Budget          float64             `json:"budget"`
	BudgetFormatted string              `json:"budgetFormatted"`
	Location        string              `json:"location"`
	Deadline        string              `json:"deadline"`
	Category        actor.TradeCategory `json:"category"`
	PostedBy        string              `json:"postedBy"`
	CreatedAt       time.Time           `json:"createdAt"`
	Status          Status              `json:"status"`
}

// FormatBudget renders an amount with thousands separators followed by
// the currency label, e.g. 50000 -> "50,000 ريال".
func FormatBudget(amount float64) string {
	return humanize.Commaf(amount) + " " + currencyLabel
}

// SearchFilter narrows a project browse. Query matches
// case-insensitively against title or description; Category and
// Location are exact constraints when non-empty; MaxBudget is an
// inclusive upper bound, with values <= 0 meaning unconstrained.
type SearchFilter struct {
	Query     string
	Category  actor.TradeCategory
	Location  string
	MaxBudget float64
}
