package entity

import (
	"errors"

	"github.com/google/uuid"
)

// Template is an email body with {{placeholder}} tokens. Tokens are free
// text: an unmatched token is left verbatim in the rendered draft.
type Template struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phase Phase  `json:"phase"`
	Body  string `json:"body" validate:"required"`
}

func NewTemplate(name string, phase Phase, body string) (*Template, error) {
	t := &Template{
		ID:    uuid.New().String(),
		Name:  name,
		Phase: phase,
		Body:  body,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Template) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	if t.Body == "" {
		return errors.New("body is required")
	}
	if t.Phase != "" && !t.Phase.Valid() {
		return errors.New("unknown phase: " + string(t.Phase))
	}
	return nil
}

// TemplatePatch carries a partial template update.
type TemplatePatch struct {
	Name  *string `json:"name,omitempty"`
	Phase *Phase  `json:"phase,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (p TemplatePatch) Apply(t *Template) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Phase != nil {
		t.Phase = *p.Phase
	}
	if p.Body != nil {
		t.Body = *p.Body
	}
}

// DefaultTemplates are seeded on the first read of an empty template
// collection, one per campaign phase.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:    "1",
			Name:  "Initial Outreach - Professional",
			Phase: PhaseInitial,
			Body: `Dear {{contactName}},

I hope this message finds you well. I came across {{company}} and was impressed by your work in the {{sector}} sector.

{{contextHook}}

{{painQuestion}}

I would love to explore how we might be able to support your goals.

Best regards`,
		},
		{
			ID:    "2",
			Name:  "Follow-up Reminder",
			Phase: PhaseReminder,
			Body: `Hi {{contactName}},

I wanted to follow up on my previous message regarding {{company}}.

{{painQuestion}}

Would you have 15 minutes this week for a brief call?

Best`,
		},
		{
			ID:    "3",
			Name:  "Escalation - Direct",
			Phase: PhaseEscalation,
			Body: `{{contactName}},

I understand you're busy, but I believe there's genuine value we can provide to {{company}}.

{{contextHook}}

Can we schedule a quick conversation?

Regards`,
		},
		{
			ID:    "4",
			Name:  "Final Pitch",
			Phase: PhasePitch,
			Body: `Dear {{contactName}},

This is my final outreach regarding a partnership opportunity with {{company}}.

{{painQuestion}}

I'm confident we can help address this challenge. Let's connect before the quarter ends.

Best regards`,
		},
	}
}
