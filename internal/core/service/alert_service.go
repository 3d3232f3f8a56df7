package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/filter"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// AlertService implements the caregiver and patient alert feeds.
type AlertService struct {
	repo ports.AlertRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAlertService(repo ports.AlertRepository, log zerolog.Logger) *AlertService {
	return &AlertService{repo: repo, log: log, now: time.Now}
}

// ListAlerts returns the feed filtered by search/severity/status. Stats cover
// the unfiltered feed: high-severity count, unread count, alerts raised today,
// and the percentage already responded to.
func (s *AlertService) ListAlerts(ctx context.Context, in ports.ListAlertsInput) (*ports.ListAlertsResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	criteria := filter.NewCriteria(in.Search,
		func(a domain.Alert) string { return a.Message },
		func(a domain.Alert) string { return a.PatientName },
	).
		Where(func(a domain.Alert) string { return string(a.Severity) }, in.Severity).
		Where(func(a domain.Alert) string { return string(a.Status) }, in.Status)

	matched := filter.Apply(all, criteria)

	today := s.now().UTC().Truncate(24 * time.Hour)
	responded := filter.Count(all, func(a domain.Alert) bool { return a.Status == domain.AlertResponded })

	stats := ports.AlertStats{
		High:   filter.Count(all, func(a domain.Alert) bool { return a.Severity == domain.SeverityHigh }),
		Unread: filter.Count(all, func(a domain.Alert) bool { return a.Status == domain.AlertUnread }),
		Today: filter.Count(all, func(a domain.Alert) bool {
			return !a.Timestamp.UTC().Truncate(24 * time.Hour).Before(today)
		}),
	}
	if len(all) > 0 {
		stats.ResponseRate = int(math.Round(float64(responded) / float64(len(all)) * 100))
	}

	return &ports.ListAlertsResult{Items: matched, Matched: len(matched), Stats: stats}, nil
}

// PatientAlerts returns a single patient's own feed.
func (s *AlertService) PatientAlerts(ctx context.Context, patientID string) ([]domain.Alert, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// RespondToAlert marks an alert responded and records the response text.
func (s *AlertService) RespondToAlert(ctx context.Context, id, response string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetStatus(ctx, id, domain.AlertResponded, response); err != nil {
		return err
	}
	s.log.Info().Str("alert_id", id).Msg("alert responded")
	return nil
}

// MarkAlertRead moves an unread alert to read. Alerts already read or
// responded are left untouched.
func (s *AlertService) MarkAlertRead(ctx context.Context, id string) error {
	alert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if alert.Status != domain.AlertUnread {
		return nil
	}
	return s.repo.SetStatus(ctx, id, domain.AlertRead, "")
}
