package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zopudigital/content-service/internal/domain"
)

// LeadService persists captured leads and forwards them to the CRM sync
// queue. Persistence is the source of truth: a publish failure is logged and
// counted but never fails the capture.
type LeadService struct {
	leads     LeadStore
	txManager TransactionManager
	publisher LeadPublisher
	logger    *slog.Logger
}

func NewLeadService(
	leads LeadStore,
	txManager TransactionManager,
	publisher LeadPublisher,
	logger *slog.Logger,
) *LeadService {
	return &LeadService{
		leads:     leads,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "leads"),
	}
}

// Capture validates, stores and publishes a lead. Returns the stored id.
func (s *LeadService) Capture(ctx context.Context, lead *domain.Lead) (int64, error) {
	if err := validateLead(lead); err != nil {
		return 0, err
	}

	lead.CreatedAt = time.Now().UTC()

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.leads.Insert(txCtx, lead)
		if err != nil {
			return fmt.Errorf("insert lead: %w", err)
		}
		lead.ID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, lead); err != nil {
			s.logger.Error("failed to publish lead event",
				"lead_id", lead.ID,
				"error", err,
			)
		}
	}

	s.logger.Info("lead captured",
		"lead_id", lead.ID,
		"source_path", lead.SourcePath,
	)

	return lead.ID, nil
}

func validateLead(lead *domain.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidLead)
	}
	email := strings.TrimSpace(lead.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", domain.ErrInvalidLead)
	}
	if lead.PersonaID != nil && !domain.IsValidPersona(string(*lead.PersonaID)) {
		return fmt.Errorf("%w: unknown persona %q", domain.ErrInvalidLead, *lead.PersonaID)
	}
	return nil
}
