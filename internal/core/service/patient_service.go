package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/filter"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// PatientService implements patient data reads for the doctor roster, the
// patient overview, and the caregiver timeline.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

// ListPatients returns the roster filtered by name search and risk level.
func (s *PatientService) ListPatients(ctx context.Context, in ports.ListPatientsInput) (*ports.ListPatientsResult, error) {
	all, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	criteria := filter.NewCriteria(in.Search,
		func(p domain.PatientSummary) string { return p.Name },
	).
		Where(func(p domain.PatientSummary) string { return string(p.RiskLevel) }, in.Risk)

	matched := filter.Apply(all, criteria)

	stats := ports.PatientStats{
		Total:    len(all),
		HighRisk: filter.Count(all, func(p domain.PatientSummary) bool { return p.RiskLevel == domain.RiskHigh }),
	}

	return &ports.ListPatientsResult{Items: matched, Matched: len(matched), Stats: stats}, nil
}

// PatientOverview returns the full profile backing the patient dashboard.
func (s *PatientService) PatientOverview(ctx context.Context, patientID string) (*domain.PatientProfile, error) {
	return s.repo.FindProfile(ctx, patientID)
}

// Timeline returns a patient's daily check-ins, newest first.
func (s *PatientService) Timeline(ctx context.Context, patientID string) ([]domain.CheckIn, error) {
	return s.repo.ListCheckIns(ctx, patientID)
}
