package entity

// DashboardStats is the headline summary shown on the dashboard.
type DashboardStats struct {
	TotalLeads      int     `json:"totalLeads"`
	DraftsGenerated int     `json:"draftsGenerated"`
	AvgAIScore      float64 `json:"avgAiScore"`
	Templates       int     `json:"templates"`
}

// ScoreDistribution buckets leads by AI score. A score of exactly 4 counts
// as medium; a score of 0 counts as unscored, never as low.
type ScoreDistribution struct {
	High     int `json:"high"`     // score >= 7
	Medium   int `json:"medium"`   // 4 <= score < 7
	Low      int `json:"low"`      // 0 < score < 4
	Unscored int `json:"unscored"` // score == 0
}

// SectorCount is one row of the top-sectors breakdown.
type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// AnalyticsReport is the full recomputed analytics view.
type AnalyticsReport struct {
	TotalLeads        int               `json:"totalLeads"`
	DraftsGenerated   int               `json:"draftsGenerated"`
	DraftRate         float64           `json:"draftRate"`
	AvgAIScore        float64           `json:"avgAiScore"`
	ByPhase           map[Phase]int     `json:"byPhase"`
	TopSectors        []SectorCount     `json:"topSectors"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
}
