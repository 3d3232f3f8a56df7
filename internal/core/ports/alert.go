package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// AlertRepository persists monitoring alerts. List returns newest first.
type AlertRepository interface {
	List(ctx context.Context) ([]domain.Alert, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Alert, error)
	FindByID(ctx context.Context, id string) (*domain.Alert, error)
	SetStatus(ctx context.Context, id string, status domain.AlertStatus, response string) error
}

// ListAlertsInput carries the alert feed filter state.
type ListAlertsInput struct {
	Search   string
	Severity string
	Status   string
}

// AlertStats are counts over the unfiltered alert feed. ResponseRate is the
// percentage of alerts already responded to, rounded to the nearest integer.
type AlertStats struct {
	High         int `json:"high"`
	Unread       int `json:"unread"`
	Today        int `json:"today"`
	ResponseRate int `json:"response_rate"`
}

// ListAlertsResult is the filtered feed plus base stats.
type ListAlertsResult struct {
	Items   []domain.Alert `json:"items"`
	Matched int            `json:"matched"`
	Stats   AlertStats     `json:"stats"`
}

// AlertService defines the alert feed use cases.
type AlertService interface {
	ListAlerts(ctx context.Context, in ListAlertsInput) (*ListAlertsResult, error)
	PatientAlerts(ctx context.Context, patientID string) ([]domain.Alert, error)
	RespondToAlert(ctx context.Context, id, response string) error
	MarkAlertRead(ctx context.Context, id string) error
}
