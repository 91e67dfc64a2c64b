package entity

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobQueued  JobStatus = "QUEUED"
	JobRunning JobStatus = "RUNNING"
	JobDone    JobStatus = "DONE"
	JobFailed  JobStatus = "FAILED"
)

// GenerationJob tracks one batch draft-generation run. Progress is persisted
// after every lead so a reader polling the job sees it advance; there is no
// cancellation once a job has started.
type GenerationJob struct {
	ID         string    `json:"id" validate:"required"`
	LeadIDs    []string  `json:"leadIds"`
	TemplateID string    `json:"templateId"`
	Phase      Phase     `json:"phase"`
	Tone       Tone      `json:"tone"`
	Status     JobStatus `json:"status"`
	Total      int       `json:"total"`
	Generated  int       `json:"generated"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
}

func NewGenerationJob(leadIDs []string, templateID string, phase Phase, tone Tone) *GenerationJob {
	return &GenerationJob{
		ID:         uuid.New().String(),
		LeadIDs:    leadIDs,
		TemplateID: templateID,
		Phase:      phase,
		Tone:       tone,
		Status:     JobQueued,
		Total:      len(leadIDs),
		StartedAt:  time.Now().UTC(),
	}
}

// Progress is the completion percentage shown by the job endpoint.
func (j *GenerationJob) Progress() float64 {
	if j.Total == 0 {
		return 0
	}
	return float64(j.Generated) / float64(j.Total) * 100
}
