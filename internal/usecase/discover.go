package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

// SignalQuery configures one discovery search.
type SignalQuery struct {
	Platform    string   `json:"platform"` // "X", "LinkedIn" or "Both"
	Keywords    []string `json:"keywords"`
	Sectors     []string `json:"sectors"`
	Region      string   `json:"region"`
	SignalTypes []string `json:"signalTypes"`
}

// DiscoverUseCase searches the signal feed, filters results client-side and
// can promote selected discoveries into leads.
type DiscoverUseCase struct {
	Client   SignalClient
	Triggers TriggerRepositoryInterface
	Leads    LeadRepositoryInterface
	Logger   *zap.Logger
}

func NewDiscoverUseCase(
	client SignalClient,
	triggers TriggerRepositoryInterface,
	leads LeadRepositoryInterface,
	logger *zap.Logger,
) *DiscoverUseCase {
	return &DiscoverUseCase{Client: client, Triggers: triggers, Leads: leads, Logger: logger}
}

// Search runs the feed query, filters by sector and platform, and persists
// the results (replacing the previous discovery run).
func (uc *DiscoverUseCase) Search(ctx context.Context, query SignalQuery) ([]entity.SignalTrigger, error) {
	found, err := uc.Client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.SignalTrigger, 0, len(found))
	for _, t := range found {
		if len(query.Sectors) > 0 && !contains(query.Sectors, t.Sector) {
			continue
		}
		if query.Platform != "" && query.Platform != "Both" && t.Source != query.Platform {
			continue
		}
		filtered = append(filtered, t)
	}

	if err := uc.Triggers.SaveAll(ctx, filtered); err != nil {
		return nil, err
	}

	uc.Logger.Info("discovery complete",
		zap.String("platform", query.Platform),
		zap.Int("found", len(filtered)))
	return filtered, nil
}

// ConvertToLeads promotes the selected triggers into Trigger Follow-Up
// leads appended to the pipeline.
func (uc *DiscoverUseCase) ConvertToLeads(ctx context.Context, triggerIDs []string) ([]entity.Lead, error) {
	if len(triggerIDs) == 0 {
		return nil, &DomainError{Code: "NO_TRIGGERS_SELECTED", Message: "select at least one trigger"}
	}

	triggers, err := uc.Triggers.FindByIDs(ctx, triggerIDs)
	if err != nil {
		return nil, err
	}
	if len(triggers) == 0 {
		return nil, &DomainError{Code: "TRIGGERS_NOT_FOUND", Message: "no matching triggers"}
	}

	newLeads := make([]entity.Lead, 0, len(triggers))
	for i := range triggers {
		newLeads = append(newLeads, *triggers[i].ToLead())
	}

	if err := uc.Leads.AddAll(ctx, newLeads); err != nil {
		return nil, err
	}

	uc.Logger.Info("triggers converted to leads", zap.Int("count", len(newLeads)))
	return newLeads, nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
