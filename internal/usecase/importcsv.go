package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

// ParsedLead is one row of an uploaded lead sheet.
type ParsedLead struct {
	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Sector       string `json:"sector"`
	PainQuestion string `json:"painQuestion"`
	ContextHook  string `json:"contextHook"`
}

// ParseLeadsCSV implements the informal lead-sheet dialect: columns are
// located by case-insensitive substring match on the header, rows are split
// on bare commas with one surrounding quote pair stripped per cell, and rows
// missing company or email are dropped silently. Embedded commas and escaped
// quotes are not supported.
func ParseLeadsCSV(content string) []ParsedLead {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(strings.ToLower(lines[0]), ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var leads []ParsedLead
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		for i := range values {
			values[i] = stripQuotes(strings.TrimSpace(values[i]))
		}

		var lead ParsedLead
		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			switch {
			case strings.Contains(header, "company"):
				lead.Company = value
			case strings.Contains(header, "contact") || strings.Contains(header, "name"):
				lead.ContactName = value
			case strings.Contains(header, "email"):
				lead.Email = value
			case strings.Contains(header, "sector") || strings.Contains(header, "industry"):
				lead.Sector = value
			case strings.Contains(header, "pain"):
				lead.PainQuestion = value
			case strings.Contains(header, "context") || strings.Contains(header, "hook"):
				lead.ContextHook = value
			}
		}

		if lead.Company != "" && lead.Email != "" {
			leads = append(leads, lead)
		}
	}
	return leads
}

func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// ImportLeadsUseCase turns an uploaded sheet into stored leads.
type ImportLeadsUseCase struct {
	Leads  LeadRepositoryInterface
	Logger *zap.Logger
}

func NewImportLeadsUseCase(leads LeadRepositoryInterface, logger *zap.Logger) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Leads: leads, Logger: logger}
}

// Execute parses the sheet and appends the valid rows as Initial-phase,
// unscored leads. It returns how many were imported.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, content string) (int, error) {
	parsed := ParseLeadsCSV(content)
	if len(parsed) == 0 {
		return 0, &DomainError{Code: "NO_LEADS_FOUND", Message: "no valid leads in CSV"}
	}

	newLeads := make([]entity.Lead, 0, len(parsed))
	for _, p := range parsed {
		lead, err := entity.NewLead(p.Company, p.ContactName, p.Email, p.Sector, p.PainQuestion, p.ContextHook)
		if err != nil {
			// Rows already passed the company+email gate; anything else
			// failing here would be a programming error.
			continue
		}
		newLeads = append(newLeads, *lead)
	}

	if err := uc.Leads.AddAll(ctx, newLeads); err != nil {
		return 0, err
	}

	uc.Logger.Info("leads imported", zap.Int("count", len(newLeads)))
	return len(newLeads), nil
}
