package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PlatformX        = "X"
	PlatformLinkedIn = "LinkedIn"
)

// SignalTrigger is a buying signal discovered on a social platform.
type SignalTrigger struct {
	ID             string    `json:"id" validate:"required"`
	Platform       string    `json:"platform"`
	Source         string    `json:"source"`
	AuthorName     string    `json:"authorName"`
	AuthorCompany  string    `json:"authorCompany"`
	AuthorEmail    string    `json:"authorEmail,omitempty"`
	Content        string    `json:"content"`
	SignalType     string    `json:"signalType"`
	Sector         string    `json:"sector"`
	SignalStrength int       `json:"signalStrength"`
	DiscoveredAt   time.Time `json:"discoveredAt"`
	URL            string    `json:"url,omitempty"`
}

// ToLead converts a discovered signal into a Trigger Follow-Up lead. When the
// author exposed no email a placeholder contact address is derived from the
// company name.
func (s *SignalTrigger) ToLead() *Lead {
	email := s.AuthorEmail
	if email == "" {
		company := strings.ToLower(strings.ReplaceAll(s.AuthorCompany, " ", ""))
		email = "contact@" + company + ".com"
	}

	return &Lead{
		ID:             uuid.New().String(),
		Company:        s.AuthorCompany,
		ContactName:    s.AuthorName,
		Email:          email,
		Sector:         s.Sector,
		ContextHook:    s.Content,
		SignalTrigger:  s.Content,
		SignalDate:     s.DiscoveredAt.Format(time.RFC3339),
		SignalStrength: s.SignalStrength,
		Phase:          PhaseTrigger,
		LastUpdated:    time.Now().UTC(),
		Notes:          "Discovered via " + s.Source + ": " + s.URL,
	}
}
