package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

// MailSenderInterface delivers a generated draft to the lead's contact.
type MailSenderInterface interface {
	SendDraft(lead *entity.Lead) error
}

type SendDraftUseCase struct {
	Leads  LeadRepositoryInterface
	Mail   MailSenderInterface
	Logger *zap.Logger
}

func NewSendDraftUseCase(leads LeadRepositoryInterface, mail MailSenderInterface, logger *zap.Logger) *SendDraftUseCase {
	return &SendDraftUseCase{Leads: leads, Mail: mail, Logger: logger}
}

// Execute sends the lead's generated draft by email. Leads without a draft
// are rejected before any SMTP dialing happens.
func (uc *SendDraftUseCase) Execute(ctx context.Context, leadID string) error {
	leads, err := uc.Leads.GetAll(ctx)
	if err != nil {
		return err
	}

	var lead *entity.Lead
	for i := range leads {
		if leads[i].ID == leadID {
			lead = &leads[i]
			break
		}
	}
	if lead == nil {
		return ErrLeadNotFound
	}
	if !lead.HasDraft() {
		return ErrNoDraft
	}

	if err := uc.Mail.SendDraft(lead); err != nil {
		return &DomainError{Code: "MAIL_FAILED", Message: "could not send draft: " + err.Error()}
	}

	uc.Logger.Info("draft sent", zap.String("lead_id", lead.ID), zap.String("email", lead.Email))
	return nil
}
