package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID             string    `json:"id" validate:"required"`
	Company        string    `json:"company" validate:"required"`
	ContactName    string    `json:"contactName"`
	Email          string    `json:"email" validate:"required"`
	Sector         string    `json:"sector"`
	PainQuestion   string    `json:"painQuestion"`
	ContextHook    string    `json:"contextHook"`
	SignalTrigger  string    `json:"signalTrigger,omitempty"`
	SignalDate     string    `json:"signalDate,omitempty"`
	SignalStrength int       `json:"signalStrength,omitempty"`
	Phase          Phase     `json:"phase"`
	AIScore        int       `json:"aiScore"`
	LastUpdated    time.Time `json:"lastUpdated"`
	Notes          string    `json:"notes"`
	GeneratedDraft string    `json:"generatedDraft"`
	VideoScript    string    `json:"videoScript,omitempty"`
}

// NewLead creates a lead in the Initial phase with no draft and no score.
func NewLead(company, contactName, email, sector, painQuestion, contextHook string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Company:      company,
		ContactName:  contactName,
		Email:        email,
		Sector:       sector,
		PainQuestion: painQuestion,
		ContextHook:  contextHook,
		Phase:        PhaseInitial,
		LastUpdated:  time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Company == "" {
		return errors.New("company is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Phase != "" && !l.Phase.Valid() {
		return errors.New("unknown phase: " + string(l.Phase))
	}
	return nil
}

// HasDraft reports whether a draft has been generated for this lead.
func (l *Lead) HasDraft() bool {
	return l.GeneratedDraft != ""
}

// LeadPatch carries a partial update. Nil fields are left untouched.
type LeadPatch struct {
	Company        *string `json:"company,omitempty"`
	ContactName    *string `json:"contactName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Sector         *string `json:"sector,omitempty"`
	PainQuestion   *string `json:"painQuestion,omitempty"`
	ContextHook    *string `json:"contextHook,omitempty"`
	SignalTrigger  *string `json:"signalTrigger,omitempty"`
	SignalDate     *string `json:"signalDate,omitempty"`
	SignalStrength *int    `json:"signalStrength,omitempty"`
	Phase          *Phase  `json:"phase,omitempty"`
	AIScore        *int    `json:"aiScore,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	GeneratedDraft *string `json:"generatedDraft,omitempty"`
	VideoScript    *string `json:"videoScript,omitempty"`
}

// Apply merges the patch into the lead. LastUpdated is refreshed by the
// repository, not here.
func (p LeadPatch) Apply(l *Lead) {
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.ContactName != nil {
		l.ContactName = *p.ContactName
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Sector != nil {
		l.Sector = *p.Sector
	}
	if p.PainQuestion != nil {
		l.PainQuestion = *p.PainQuestion
	}
	if p.ContextHook != nil {
		l.ContextHook = *p.ContextHook
	}
	if p.SignalTrigger != nil {
		l.SignalTrigger = *p.SignalTrigger
	}
	if p.SignalDate != nil {
		l.SignalDate = *p.SignalDate
	}
	if p.SignalStrength != nil {
		l.SignalStrength = *p.SignalStrength
	}
	if p.Phase != nil {
		l.Phase = *p.Phase
	}
	if p.AIScore != nil {
		l.AIScore = *p.AIScore
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.GeneratedDraft != nil {
		l.GeneratedDraft = *p.GeneratedDraft
	}
	if p.VideoScript != nil {
		l.VideoScript = *p.VideoScript
	}
}
