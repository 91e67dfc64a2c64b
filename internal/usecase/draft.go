package usecase

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tahqeeq/outreach/internal/entity"
)

// Fallback phrases substituted when a lead field is empty.
const (
	fallbackContactName  = "there"
	fallbackPainQuestion = "How can we help you overcome your current challenges?"
	fallbackContextHook  = "Your company has been doing impressive work"
)

// RenderDraft substitutes the fixed placeholder tokens with lead fields and
// applies the tone rewrites, in that order. Unknown tokens are left verbatim.
// The text transform is deterministic for a given (lead, template, tone).
func RenderDraft(lead *entity.Lead, template *entity.Template, tone entity.Tone) string {
	draft := template.Body

	draft = strings.ReplaceAll(draft, "{{contactName}}", orElse(lead.ContactName, fallbackContactName))
	draft = strings.ReplaceAll(draft, "{{company}}", lead.Company)
	draft = strings.ReplaceAll(draft, "{{sector}}", lead.Sector)
	draft = strings.ReplaceAll(draft, "{{painQuestion}}", orElse(lead.PainQuestion, fallbackPainQuestion))
	draft = strings.ReplaceAll(draft, "{{contextHook}}", orElse(lead.ContextHook, fallbackContextHook))
	draft = strings.ReplaceAll(draft, "{{signalTrigger}}", orElse(lead.SignalTrigger, orElse(lead.ContextHook, fallbackContextHook)))

	switch tone {
	case entity.ToneFriendly:
		draft = strings.ReplaceAll(draft, "Dear ", "Hi ")
		draft = strings.ReplaceAll(draft, "Best regards", "Cheers")
	case entity.ToneAssertive:
		draft = strings.ReplaceAll(draft, "I hope this message finds you well.", "")
		draft = strings.ReplaceAll(draft, "I would love to", "I want to")
	case entity.ToneSubtle:
		draft = strings.ReplaceAll(draft, "I want to", "I thought it might be worth")
	}

	return strings.TrimSpace(draft)
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ScoreDraft returns a quality score uniform in [6,9]. It is not derived
// from the draft content.
func ScoreDraft() int {
	return rand.IntN(4) + 6
}

// TemplateProvider is the shipped DraftProvider: placeholder substitution
// plus a simulated per-lead latency in [minDelay, maxDelay).
type TemplateProvider struct {
	minDelay time.Duration
	maxDelay time.Duration
}

type TemplateProviderOption func(*TemplateProvider)

// WithDelay overrides the simulated latency window. Tests pass (0, 0).
func WithDelay(min, max time.Duration) TemplateProviderOption {
	return func(p *TemplateProvider) {
		p.minDelay = min
		p.maxDelay = max
	}
}

func NewTemplateProvider(opts ...TemplateProviderOption) *TemplateProvider {
	p := &TemplateProvider{
		minDelay: 300 * time.Millisecond,
		maxDelay: 800 * time.Millisecond,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *TemplateProvider) Generate(ctx context.Context, lead *entity.Lead, template *entity.Template, tone entity.Tone) (string, int, error) {
	if delay := p.delay(); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", 0, ctx.Err()
		}
	}
	return RenderDraft(lead, template, tone), ScoreDraft(), nil
}

func (p *TemplateProvider) delay() time.Duration {
	if p.maxDelay <= p.minDelay {
		return p.minDelay
	}
	return p.minDelay + rand.N(p.maxDelay-p.minDelay)
}
