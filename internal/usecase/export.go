package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tahqeeq/outreach/internal/entity"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
	ExportTXT  ExportFormat = "txt"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename string
	MIMEType string
	Content  string
}

// exportRow is the field projection shared by the JSON export.
type exportRow struct {
	Company        string       `json:"company"`
	ContactName    string       `json:"contactName"`
	Email          string       `json:"email"`
	Sector         string       `json:"sector"`
	Phase          entity.Phase `json:"phase"`
	AIScore        int          `json:"aiScore"`
	GeneratedDraft string       `json:"generatedDraft"`
}

type ExportUseCase struct {
	Leads LeadRepositoryInterface
}

func NewExportUseCase(leads LeadRepositoryInterface) *ExportUseCase {
	return &ExportUseCase{Leads: leads}
}

// Execute renders the selected leads in the requested format. Selection is
// by id; an empty selection is rejected.
func (uc *ExportUseCase) Execute(ctx context.Context, format ExportFormat, leadIDs []string) (*ExportFile, error) {
	if len(leadIDs) == 0 {
		return nil, ErrNoLeadsSelected
	}

	all, err := uc.Leads.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(leadIDs))
	for _, id := range leadIDs {
		wanted[id] = true
	}
	var selected []entity.Lead
	for _, l := range all {
		if wanted[l.ID] {
			selected = append(selected, l)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoLeadsSelected
	}

	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	switch format {
	case ExportCSV:
		return &ExportFile{
			Filename: "tahqeeq-export-" + stamp + ".csv",
			MIMEType: "text/csv",
			Content:  renderCSV(selected),
		}, nil
	case ExportJSON:
		content, err := renderJSON(selected)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename: "tahqeeq-export-" + stamp + ".json",
			MIMEType: "application/json",
			Content:  content,
		}, nil
	case ExportTXT:
		return &ExportFile{
			Filename: "tahqeeq-export-" + stamp + ".txt",
			MIMEType: "text/plain",
			Content:  renderTXT(selected),
		}, nil
	default:
		return nil, &DomainError{Code: "UNKNOWN_FORMAT", Message: "unknown export format: " + string(format)}
	}
}

// renderCSV quote-escapes only the draft column: embedded double quotes are
// doubled and the whole field wrapped in quotes. The other columns are
// emitted bare, as the consumers of this sheet expect.
func renderCSV(leads []entity.Lead) string {
	lines := []string{"Company,Contact Name,Email,Sector,Phase,AI Score,Generated Draft"}
	for _, l := range leads {
		draft := `"` + strings.ReplaceAll(l.GeneratedDraft, `"`, `""`) + `"`
		fields := []string{
			l.Company,
			l.ContactName,
			l.Email,
			l.Sector,
			string(l.Phase),
			strconv.Itoa(l.AIScore),
			draft,
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func renderJSON(leads []entity.Lead) (string, error) {
	rows := make([]exportRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, exportRow{
			Company:        l.Company,
			ContactName:    l.ContactName,
			Email:          l.Email,
			Sector:         l.Sector,
			Phase:          l.Phase,
			AIScore:        l.AIScore,
			GeneratedDraft: l.GeneratedDraft,
		})
	}
	raw, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(raw), nil
}

func renderTXT(leads []entity.Lead) string {
	blocks := make([]string, 0, len(leads))
	for _, l := range leads {
		blocks = append(blocks, fmt.Sprintf(
			"=== %s - %s ===\nEmail: %s\nPhase: %s\nAI Score: %d/10\n\n%s\n\n%s\n",
			l.Company, l.ContactName, l.Email, l.Phase, l.AIScore,
			l.GeneratedDraft, strings.Repeat("=", 50),
		))
	}
	return strings.Join(blocks, "\n")
}
