package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

type stubPatientService struct {
	listFn     func(ctx context.Context, in ports.ListPatientsInput) (*ports.ListPatientsResult, error)
	overviewFn func(ctx context.Context, patientID string) (*domain.PatientProfile, error)
	timelineFn func(ctx context.Context, patientID string) ([]domain.CheckIn, error)
}

func (s *stubPatientService) ListPatients(ctx context.Context, in ports.ListPatientsInput) (*ports.ListPatientsResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubPatientService) PatientOverview(ctx context.Context, patientID string) (*domain.PatientProfile, error) {
	return s.overviewFn(ctx, patientID)
}

func (s *stubPatientService) Timeline(ctx context.Context, patientID string) ([]domain.CheckIn, error) {
	return s.timelineFn(ctx, patientID)
}

func TestPatientHandler_MyOverview_UsesSessionIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		overviewFn: func(ctx context.Context, patientID string) (*domain.PatientProfile, error) {
			if patientID != "1" {
				t.Fatalf("expected own id, got %q", patientID)
			}
			return &domain.PatientProfile{ID: "1", Name: "John Doe"}, nil
		},
	}
	h := NewPatientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/patient/overview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "1")
	c.Set("session_id", "sid-1")
	c.Set("role", "patient")

	if err := h.MyOverview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPatientHandler_Timeline_PatientCannotReadOthers(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		timelineFn: func(ctx context.Context, patientID string) ([]domain.CheckIn, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPatientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/patient/patients/6/timeline", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "1")
	c.Set("session_id", "sid-1")
	c.Set("role", "patient")
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := h.Timeline(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestPatientHandler_Timeline_CaregiverReadsAnyPatient(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		timelineFn: func(ctx context.Context, patientID string) ([]domain.CheckIn, error) {
			if patientID != "6" {
				t.Fatalf("unexpected patient id: %q", patientID)
			}
			return []domain.CheckIn{{ID: "c1", PatientID: "6"}}, nil
		},
	}
	h := NewPatientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/caregiver/patients/6/timeline", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "3")
	c.Set("session_id", "sid-3")
	c.Set("role", "caregiver")
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := h.Timeline(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPatientHandler_ListPatients_PassesFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		listFn: func(ctx context.Context, in ports.ListPatientsInput) (*ports.ListPatientsResult, error) {
			if in.Search != "chen" || in.Risk != "High" {
				t.Fatalf("unexpected filters: %+v", in)
			}
			return &ports.ListPatientsResult{Matched: 1}, nil
		},
	}
	h := NewPatientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/doctor/patients?search=chen&risk=High", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
