package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/api/metrics"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// AppointmentHandler serves the doctor booking workflow.
type AppointmentHandler struct {
	appointments ports.AppointmentService
}

func NewAppointmentHandler(appointments ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type createAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	Date        string `json:"appointment_date" validate:"required"`
	Time        string `json:"appointment_time" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// ListAppointments returns bookings newest first, narrowed by search/status.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Param        search  query     string  false  "substring match on patient name or reason"
// @Param        status  query     string  false  "pending|confirmed|completed|cancelled|all"
// @Success      200     {object}  ports.ListAppointmentsResult
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/doctor/appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	res, err := h.appointments.ListAppointments(c.Request().Context(), ports.ListAppointmentsInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// CreateAppointment books a new appointment; it starts in pending state.
//
// @Summary      Create appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "New booking"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/doctor/appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.appointments.CreateAppointment(c.Request().Context(), ports.CreateAppointmentInput{
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// UpdateAppointmentStatus applies one lifecycle transition. Invalid moves,
// such as confirming a cancelled booking, get 422.
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Appointment ID"
// @Param        body  body      updateAppointmentStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/doctor/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.appointments.UpdateAppointmentStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
