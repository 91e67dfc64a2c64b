// Package signals is the discovery feed client. The only shipped
// implementation serves a canned feed: nothing here talks to X or LinkedIn,
// and the search delay is simulated.
package signals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/usecase"
)

// MockClient returns the fixed demo feed after a simulated search delay.
// Filtering happens in the usecase, as it would with a real feed.
type MockClient struct {
	delay time.Duration
}

type Option func(*MockClient)

// WithSearchDelay overrides the simulated search time. Tests pass 0.
func WithSearchDelay(d time.Duration) Option {
	return func(c *MockClient) { c.delay = d }
}

func NewMockClient(opts ...Option) *MockClient {
	c := &MockClient{delay: 2 * time.Second}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *MockClient) Search(ctx context.Context, query usecase.SignalQuery) ([]entity.SignalTrigger, error) {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return demoFeed(), nil
}

// demoFeed stamps each canned signal with a fresh id and discovery time.
func demoFeed() []entity.SignalTrigger {
	now := time.Now().UTC()
	return []entity.SignalTrigger{
		{
			ID:             uuid.New().String(),
			Platform:       entity.PlatformX,
			Source:         entity.PlatformX,
			Content:        "We're struggling to find qualified talent in Qatar's competitive tech market. Any recommendations?",
			AuthorName:     "Ahmed Al-Thani",
			AuthorCompany:  "Qatar Tech Solutions",
			AuthorEmail:    "ahmed@qatartech.qa",
			Sector:         "Technology",
			SignalType:     "pain_point",
			SignalStrength: 8,
			DiscoveredAt:   now,
			URL:            "https://x.com/example/status/123",
		},
		{
			ID:             uuid.New().String(),
			Platform:       entity.PlatformLinkedIn,
			Source:         entity.PlatformLinkedIn,
			Content:        "Excited to announce our Series B funding round! Looking forward to expanding our Doha operations.",
			AuthorName:     "Fatima Hassan",
			AuthorCompany:  "GCC Fintech",
			AuthorEmail:    "fatima@gccfintech.com",
			Sector:         "Finance",
			SignalType:     "funding",
			SignalStrength: 9,
			DiscoveredAt:   now,
			URL:            "https://linkedin.com/posts/example",
		},
		{
			ID:             uuid.New().String(),
			Platform:       entity.PlatformX,
			Source:         entity.PlatformX,
			Content:        "Just appointed as the new Head of Digital Transformation at Doha Bank. Excited for the challenges ahead!",
			AuthorName:     "Mohammed Al-Kuwari",
			AuthorCompany:  "Doha Bank",
			Sector:         "Finance",
			SignalType:     "leadership",
			SignalStrength: 7,
			DiscoveredAt:   now,
			URL:            "https://x.com/example/status/456",
		},
		{
			ID:             uuid.New().String(),
			Platform:       entity.PlatformLinkedIn,
			Source:         entity.PlatformLinkedIn,
			Content:        "Our customer retention rates have been declining despite increased marketing spend. Time to rethink our approach.",
			AuthorName:     "Sara Al-Marri",
			AuthorCompany:  "Gulf Retail Group",
			AuthorEmail:    "sara@gulfretail.com",
			Sector:         "Retail",
			SignalType:     "pain_point",
			SignalStrength: 9,
			DiscoveredAt:   now,
			URL:            "https://linkedin.com/posts/example2",
		},
	}
}
