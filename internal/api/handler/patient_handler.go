package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// PatientHandler serves patient data across three portals: the doctor roster,
// the caregiver timeline, and the patient's own dashboard.
type PatientHandler struct {
	patients ports.PatientService
}

func NewPatientHandler(patients ports.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// ListPatients returns the doctor roster narrowed by name search and risk level.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Param        search  query     string  false  "substring match on name"
// @Param        risk    query     string  false  "Low|Medium|High|all"
// @Success      200     {object}  ports.ListPatientsResult
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/doctor/patients [get]
func (h *PatientHandler) ListPatients(c echo.Context) error {
	res, err := h.patients.ListPatients(c.Request().Context(), ports.ListPatientsInput{
		Search: c.QueryParam("search"),
		Risk:   c.QueryParam("risk"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// MyOverview returns the authenticated patient's own dashboard profile.
//
// @Summary      Patient's own overview
// @Tags         patients
// @Produce      json
// @Success      200  {object}  domain.PatientProfile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/patient/overview [get]
func (h *PatientHandler) MyOverview(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.patients.PatientOverview(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// PatientOverview returns any patient's profile; doctor and caregiver portals
// pass the target id explicitly.
//
// @Summary      Patient overview
// @Tags         patients
// @Produce      json
// @Param        id  path      string  true  "Patient ID"
// @Success      200  {object}  domain.PatientProfile
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/doctor/patients/{id} [get]
func (h *PatientHandler) PatientOverview(c echo.Context) error {
	profile, err := h.patients.PatientOverview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Timeline returns a patient's daily check-ins, newest first. The patient role
// may only read its own timeline; the id in the path must match the session.
//
// @Summary      Check-in timeline
// @Tags         patients
// @Produce      json
// @Param        id  path      string  true  "Patient ID"
// @Success      200  {array}   domain.CheckIn
// @Failure      403  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/caregiver/patients/{id}/timeline [get]
func (h *PatientHandler) Timeline(c echo.Context) error {
	userID, _, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID := c.Param("id")
	if role == string(domain.RolePatient) && patientID != userID {
		return domain.ErrForbidden
	}

	checkIns, err := h.patients.Timeline(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkIns)
}
