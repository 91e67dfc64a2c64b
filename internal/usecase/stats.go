package usecase

import (
	"sort"

	"github.com/tahqeeq/outreach/internal/entity"
)

// Aggregators are pure functions recomputed from the current lead snapshot
// on every call. Cost is linear in lead count, which is fine at the
// hundreds-of-leads scale this runs at.

// Dashboard computes the headline stats.
func Dashboard(leads []entity.Lead, templates []entity.Template) entity.DashboardStats {
	return entity.DashboardStats{
		TotalLeads:      len(leads),
		DraftsGenerated: countDrafts(leads),
		AvgAIScore:      averageScore(leads),
		Templates:       len(templates),
	}
}

// Analytics computes the full breakdown: phase counts, top sectors and the
// score distribution.
func Analytics(leads []entity.Lead) entity.AnalyticsReport {
	report := entity.AnalyticsReport{
		TotalLeads:      len(leads),
		DraftsGenerated: countDrafts(leads),
		AvgAIScore:      averageScore(leads),
		ByPhase:         map[entity.Phase]int{},
	}

	if report.TotalLeads > 0 {
		report.DraftRate = float64(report.DraftsGenerated) / float64(report.TotalLeads) * 100
	}

	for _, phase := range entity.CampaignPhases {
		report.ByPhase[phase] = 0
	}
	for _, l := range leads {
		if _, ok := report.ByPhase[l.Phase]; ok {
			report.ByPhase[l.Phase]++
		}
	}

	report.TopSectors = topSectors(leads, 5)
	report.ScoreDistribution = ScoreBuckets(leads)
	return report
}

// ScoreBuckets counts leads per score band. The boundaries are deliberate:
// a score of exactly 4 is medium, and a score of 0 is unscored, not low.
func ScoreBuckets(leads []entity.Lead) entity.ScoreDistribution {
	var dist entity.ScoreDistribution
	for _, l := range leads {
		switch {
		case l.AIScore >= 7:
			dist.High++
		case l.AIScore >= 4:
			dist.Medium++
		case l.AIScore > 0:
			dist.Low++
		default:
			dist.Unscored++
		}
	}
	return dist
}

func countDrafts(leads []entity.Lead) int {
	n := 0
	for _, l := range leads {
		if l.HasDraft() {
			n++
		}
	}
	return n
}

// averageScore returns 0 for an empty collection.
func averageScore(leads []entity.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}
	sum := 0
	for _, l := range leads {
		sum += l.AIScore
	}
	return float64(sum) / float64(len(leads))
}

// topSectors groups by sector ("Unknown" for blank) and returns the n
// largest, descending by count.
func topSectors(leads []entity.Lead, n int) []entity.SectorCount {
	counts := map[string]int{}
	for _, l := range leads {
		sector := l.Sector
		if sector == "" {
			sector = "Unknown"
		}
		counts[sector]++
	}

	out := make([]entity.SectorCount, 0, len(counts))
	for sector, count := range counts {
		out = append(out, entity.SectorCount{Sector: sector, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sector < out[j].Sector
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
