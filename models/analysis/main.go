package analysis

import (
	"time"

	c "pedigree/api/models/constants"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type AnalysisRequest struct {
	Id          uuid.UUID         `json:"id"`
	Mode        c.InheritanceMode `json:"mode"`
	ProbandIds  []string          `json:"probandIds"`
	State       State             `json:"state"`
	Message     string            `json:"message"`
	ResultCount int               `json:"resultCount"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
