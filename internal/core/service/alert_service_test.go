package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

type stubAlertRepo struct {
	alerts []domain.Alert
}

func (r *stubAlertRepo) List(_ context.Context) ([]domain.Alert, error) {
	out := make([]domain.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

func (r *stubAlertRepo) ListByPatient(_ context.Context, patientID string) ([]domain.Alert, error) {
	var out []domain.Alert
	for _, a := range r.alerts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAlertRepo) FindByID(_ context.Context, id string) (*domain.Alert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			a := r.alerts[i]
			return &a, nil
		}
	}
	return nil, domain.ErrAlertNotFound
}

func (r *stubAlertRepo) SetStatus(_ context.Context, id string, status domain.AlertStatus, response string) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Status = status
			if response != "" {
				r.alerts[i].Response = response
			}
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

var alertNow = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func newAlertFixture() (*AlertService, *stubAlertRepo) {
	repo := &stubAlertRepo{alerts: []domain.Alert{
		{ID: "al1", PatientID: "1", PatientName: "John Doe", Message: "Elevated stress detected", Severity: domain.SeverityHigh, Status: domain.AlertUnread, Timestamp: alertNow.Add(-2 * time.Hour)},
		{ID: "al2", PatientID: "1", PatientName: "John Doe", Message: "Missed morning check-in", Severity: domain.SeverityMedium, Status: domain.AlertRead, Timestamp: alertNow.Add(-26 * time.Hour)},
		{ID: "al3", PatientID: "6", PatientName: "Robert Chen", Message: "Sleep quality declining", Severity: domain.SeverityLow, Status: domain.AlertResponded, Response: "Scheduled a call", Timestamp: alertNow.Add(-48 * time.Hour)},
		{ID: "al4", PatientID: "6", PatientName: "Robert Chen", Message: "Heart rate spike", Severity: domain.SeverityHigh, Status: domain.AlertResponded, Response: "Contacted patient", Timestamp: alertNow.Add(-1 * time.Hour)},
	}}
	svc := NewAlertService(repo, zerolog.Nop())
	svc.now = func() time.Time { return alertNow }
	return svc, repo
}

func TestAlertService_ListAlerts_Stats(t *testing.T) {
	svc, _ := newAlertFixture()

	res, err := svc.ListAlerts(context.Background(), ports.ListAlertsInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 4 {
		t.Fatalf("expected 4 alerts, got %d", res.Matched)
	}
	// 2 responded out of 4 is 50%
	want := ports.AlertStats{High: 2, Unread: 1, Today: 2, ResponseRate: 50}
	if res.Stats != want {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
}

func TestAlertService_ListAlerts_Filters(t *testing.T) {
	svc, _ := newAlertFixture()

	res, err := svc.ListAlerts(context.Background(), ports.ListAlertsInput{Search: "chen", Severity: "high"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].ID != "al4" {
		t.Fatalf("unexpected result: %+v", res.Items)
	}
	// stats ignore the filter
	if res.Stats.High != 2 {
		t.Fatalf("stats should cover the unfiltered feed: %+v", res.Stats)
	}

	res, err = svc.ListAlerts(context.Background(), ports.ListAlertsInput{Severity: "all", Status: "all"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 4 {
		t.Fatalf("all sentinel should match everything, got %d", res.Matched)
	}
}

func TestAlertService_ListAlerts_EmptyFeed(t *testing.T) {
	svc := NewAlertService(&stubAlertRepo{}, zerolog.Nop())

	res, err := svc.ListAlerts(context.Background(), ports.ListAlertsInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Stats.ResponseRate != 0 {
		t.Fatalf("response rate over empty feed must be 0, got %d", res.Stats.ResponseRate)
	}
}

func TestAlertService_PatientAlerts(t *testing.T) {
	svc, _ := newAlertFixture()

	alerts, err := svc.PatientAlerts(context.Background(), "1")
	if err != nil {
		t.Fatalf("patient alerts failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts for patient 1, got %d", len(alerts))
	}
}

func TestAlertService_RespondToAlert(t *testing.T) {
	svc, repo := newAlertFixture()

	if err := svc.RespondToAlert(context.Background(), "al1", "On my way"); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	got, _ := repo.FindByID(context.Background(), "al1")
	if got.Status != domain.AlertResponded || got.Response != "On my way" {
		t.Fatalf("response not persisted: %+v", got)
	}

	if err := svc.RespondToAlert(context.Background(), "missing", "x"); err != domain.ErrAlertNotFound {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
}

func TestAlertService_MarkAlertRead(t *testing.T) {
	svc, repo := newAlertFixture()

	if err := svc.MarkAlertRead(context.Background(), "al1"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if got, _ := repo.FindByID(context.Background(), "al1"); got.Status != domain.AlertRead {
		t.Fatalf("status not persisted: %s", got.Status)
	}

	// responded alerts are not demoted back to read
	if err := svc.MarkAlertRead(context.Background(), "al4"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if got, _ := repo.FindByID(context.Background(), "al4"); got.Status != domain.AlertResponded {
		t.Fatalf("responded alert was demoted: %s", got.Status)
	}
}
