package signals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahqeeq/outreach/internal/usecase"
)

func TestMockClientFeed(t *testing.T) {
	client := NewMockClient(WithSearchDelay(0))

	found, err := client.Search(context.Background(), usecase.SignalQuery{})

	require.NoError(t, err)
	require.Len(t, found, 4)
	for _, s := range found {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.AuthorCompany)
		assert.False(t, s.DiscoveredAt.IsZero())
	}

	// The Doha Bank signal carries no email; conversion derives a placeholder.
	var sawNoEmail bool
	for _, s := range found {
		if s.AuthorCompany == "Doha Bank" {
			sawNoEmail = s.AuthorEmail == ""
		}
	}
	assert.True(t, sawNoEmail)
}

func TestMockClientHonoursContext(t *testing.T) {
	client := NewMockClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, usecase.SignalQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
