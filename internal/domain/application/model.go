package application

import (
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
)

// Status represents the decision state of an application. The only
// legal transitions are PENDING -> ACCEPTED and PENDING -> REJECTED;
// a decided application never changes again.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Decision is the subset of statuses a main contractor may assign.
type Decision = Status

// Application is a subcontractor's bid on a project.
//
// SubcontractorName, SubcontractorTrade and SubcontractorExp are
// snapshots of the bidder's profile taken at submission time; they are
// never re-read from the actor registry afterwards, so later profile
// edits do not retroactively change past bids.
type Application struct {
	ID                 string                `json:"id"`
	ProjectID          string                `json:"projectId"`
	SubcontractorID    string                `json:"subcontractorId"`
	SubcontractorName  string                `json:"subcontractorName"`
	SubcontractorTrade actor.TradeCategory   `json:"subcontractorTrade,omitempty"`
	SubcontractorExp   actor.ExperienceLevel `json:"subcontractorExp,omitempty"`
	BidAmount          float64               `json:"bidAmount"`
	Proposal           string                `json:"proposal"`
	Status             Status                `json:"status"`
	CreatedAt          time.Time             `json:"createdAt"`
	DecidedBy          *string               `json:"decidedBy,omitempty"`
	DecidedAt          *time.Time            `json:"decidedAt,omitempty"`
}

// ListFilter narrows a per-project application listing. Empty fields
// apply no constraint; non-empty ones combine conjunctively.
type ListFilter struct {
	Trade      actor.TradeCategory
	Experience actor.ExperienceLevel
}
