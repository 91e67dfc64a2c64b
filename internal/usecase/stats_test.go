package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tahqeeq/outreach/internal/entity"
)

func leadsWithScores(scores ...int) []entity.Lead {
	leads := make([]entity.Lead, len(scores))
	for i, s := range scores {
		leads[i] = entity.Lead{
			ID:      "l" + string(rune('0'+i)),
			Company: "C",
			Email:   "c@c.com",
			AIScore: s,
			Phase:   entity.PhaseInitial,
		}
	}
	return leads
}

func TestScoreBucketBoundaries(t *testing.T) {
	// 9 is high, 5 and 4 are medium, the zeros are unscored, never low.
	dist := ScoreBuckets(leadsWithScores(9, 5, 4, 0, 0))

	assert.Equal(t, 1, dist.High)
	assert.Equal(t, 2, dist.Medium)
	assert.Equal(t, 0, dist.Low)
	assert.Equal(t, 2, dist.Unscored)
}

func TestScoreBucketLowBand(t *testing.T) {
	dist := ScoreBuckets(leadsWithScores(1, 3, 7, 6))

	assert.Equal(t, 1, dist.High)   // 7
	assert.Equal(t, 1, dist.Medium) // 6
	assert.Equal(t, 2, dist.Low)    // 1, 3
	assert.Equal(t, 0, dist.Unscored)
}

func TestDashboardEmptyCollection(t *testing.T) {
	stats := Dashboard(nil, nil)

	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 0, stats.DraftsGenerated)
	assert.Equal(t, 0.0, stats.AvgAIScore)
	assert.Equal(t, 0, stats.Templates)
}

func TestDashboardAverageScore(t *testing.T) {
	stats := Dashboard(leadsWithScores(8, 6), nil)

	assert.Equal(t, 2, stats.TotalLeads)
	assert.InDelta(t, 7.0, stats.AvgAIScore, 0.001)
}

func TestDashboardTemplateCount(t *testing.T) {
	stats := Dashboard(leadsWithScores(8), entity.DefaultTemplates())

	assert.Equal(t, 4, stats.Templates)
}

func TestAnalyticsDraftRate(t *testing.T) {
	leads := leadsWithScores(8, 6, 0, 0)
	leads[0].GeneratedDraft = "draft one"
	leads[1].GeneratedDraft = "draft two"
	leads[2].GeneratedDraft = "draft three"

	report := Analytics(leads)

	assert.Equal(t, 4, report.TotalLeads)
	assert.Equal(t, 3, report.DraftsGenerated)
	assert.InDelta(t, 75.0, report.DraftRate, 0.001)
}

func TestAnalyticsDraftRateEmpty(t *testing.T) {
	report := Analytics(nil)

	assert.Equal(t, 0.0, report.DraftRate)
	assert.Equal(t, 0.0, report.AvgAIScore)
}

func TestAnalyticsPhaseCounts(t *testing.T) {
	leads := []entity.Lead{
		{ID: "1", Company: "A", Email: "a@a.com", Phase: entity.PhaseInitial},
		{ID: "2", Company: "B", Email: "b@b.com", Phase: entity.PhaseInitial},
		{ID: "3", Company: "C", Email: "c@c.com", Phase: entity.PhasePitch},
		// Trigger Follow-Up is outside the campaign-phase breakdown.
		{ID: "4", Company: "D", Email: "d@d.com", Phase: entity.PhaseTrigger},
	}

	report := Analytics(leads)

	assert.Equal(t, 2, report.ByPhase[entity.PhaseInitial])
	assert.Equal(t, 0, report.ByPhase[entity.PhaseReminder])
	assert.Equal(t, 0, report.ByPhase[entity.PhaseEscalation])
	assert.Equal(t, 1, report.ByPhase[entity.PhasePitch])
	assert.NotContains(t, report.ByPhase, entity.PhaseTrigger)
}

func TestAnalyticsTopSectors(t *testing.T) {
	leads := []entity.Lead{
		{ID: "1", Company: "A", Email: "a@a.com", Sector: "Finance"},
		{ID: "2", Company: "B", Email: "b@b.com", Sector: "Finance"},
		{ID: "3", Company: "C", Email: "c@c.com", Sector: "Retail"},
		{ID: "4", Company: "D", Email: "d@d.com", Sector: ""},
	}

	report := Analytics(leads)

	assert.Equal(t, entity.SectorCount{Sector: "Finance", Count: 2}, report.TopSectors[0])
	assert.Len(t, report.TopSectors, 3)

	sectors := map[string]bool{}
	for _, sc := range report.TopSectors {
		sectors[sc.Sector] = true
	}
	assert.True(t, sectors["Unknown"], "blank sector should group as Unknown")
}

func TestAnalyticsTopSectorsCapsAtFive(t *testing.T) {
	var leads []entity.Lead
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, s := range names {
		leads = append(leads, entity.Lead{
			ID: names[i], Company: "X", Email: "x@x.com", Sector: s,
		})
	}

	report := Analytics(leads)

	assert.Len(t, report.TopSectors, 5)
}
