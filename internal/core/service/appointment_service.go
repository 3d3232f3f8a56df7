package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/filter"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// AppointmentService implements the doctor booking workflow.
type AppointmentService struct {
	repo ports.AppointmentRepository
	log  zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, log: log}
}

// ListAppointments returns bookings newest-created first, filtered by patient
// name search and status. Stats cover the unfiltered list.
func (s *AppointmentService) ListAppointments(ctx context.Context, in ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	criteria := filter.NewCriteria(in.Search,
		func(a domain.Appointment) string { return a.PatientName },
		func(a domain.Appointment) string { return a.Reason },
	).
		Where(func(a domain.Appointment) string { return string(a.Status) }, in.Status)

	matched := filter.Apply(all, criteria)

	stats := ports.AppointmentStats{
		Total:     len(all),
		Confirmed: filter.Count(all, func(a domain.Appointment) bool { return a.Status == domain.AppointmentConfirmed }),
		Pending:   filter.Count(all, func(a domain.Appointment) bool { return a.Status == domain.AppointmentPending }),
	}

	return &ports.ListAppointmentsResult{Items: matched, Matched: len(matched), Stats: stats}, nil
}

// CreateAppointment books a new appointment in pending state.
func (s *AppointmentService) CreateAppointment(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		ID:          uuid.NewString(),
		PatientName: in.PatientName,
		Date:        in.Date,
		Time:        in.Time,
		Reason:      in.Reason,
		Status:      domain.AppointmentPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.log.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	s.log.Info().Str("appointment_id", appointment.ID).Str("patient", appointment.PatientName).Msg("appointment created")
	return appointment, nil
}

// UpdateAppointmentStatus applies a state machine transition:
// pending→confirmed|cancelled, confirmed→completed|cancelled.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id, status string) (*domain.Appointment, error) {
	next := domain.AppointmentStatus(status)

	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, appointment.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	appointment.Status = next
	s.log.Info().Str("appointment_id", id).Str("status", status).Msg("appointment status updated")
	return appointment, nil
}
