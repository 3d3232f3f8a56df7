package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// PatientRepository reads patient display data. Check-ins return newest first.
type PatientRepository interface {
	ListSummaries(ctx context.Context) ([]domain.PatientSummary, error)
	FindProfile(ctx context.Context, patientID string) (*domain.PatientProfile, error)
	ListCheckIns(ctx context.Context, patientID string) ([]domain.CheckIn, error)
}

// ListPatientsInput carries the doctor roster filter state.
type ListPatientsInput struct {
	Search string
	Risk   string
}

// PatientStats are counts over the unfiltered roster.
type PatientStats struct {
	Total    int `json:"total"`
	HighRisk int `json:"high_risk"`
}

// ListPatientsResult is the filtered roster plus base stats.
type ListPatientsResult struct {
	Items   []domain.PatientSummary `json:"items"`
	Matched int                     `json:"matched"`
	Stats   PatientStats            `json:"stats"`
}

// PatientService defines the patient data use cases shared by the doctor,
// caregiver, and patient portals.
type PatientService interface {
	ListPatients(ctx context.Context, in ListPatientsInput) (*ListPatientsResult, error)
	PatientOverview(ctx context.Context, patientID string) (*domain.PatientProfile, error)
	Timeline(ctx context.Context, patientID string) ([]domain.CheckIn, error)
}
