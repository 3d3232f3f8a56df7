package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/api/metrics"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// AlertHandler serves the caregiver alert feed and the patient's own alerts.
type AlertHandler struct {
	alerts ports.AlertService
}

func NewAlertHandler(alerts ports.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

type respondAlertRequest struct {
	Response string `json:"response" validate:"required"`
}

// ListAlerts returns the caregiver feed narrowed by search/severity/status.
// Stats always describe the whole feed, not the narrowed view.
//
// @Summary      List alerts
// @Tags         alerts
// @Produce      json
// @Param        search    query     string  false  "substring match on message or patient name"
// @Param        severity  query     string  false  "low|medium|high|all"
// @Param        status    query     string  false  "unread|read|responded|all"
// @Success      200       {object}  ports.ListAlertsResult
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/caregiver/alerts [get]
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	res, err := h.alerts.ListAlerts(c.Request().Context(), ports.ListAlertsInput{
		Search:   c.QueryParam("search"),
		Severity: c.QueryParam("severity"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// MyAlerts returns the authenticated patient's own alerts.
//
// @Summary      Patient's own alerts
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   domain.Alert
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/patient/alerts [get]
func (h *AlertHandler) MyAlerts(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	alerts, err := h.alerts.PatientAlerts(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alerts)
}

// RespondToAlert records a caregiver response and marks the alert responded.
//
// @Summary      Respond to alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Alert ID"
// @Param        body  body      respondAlertRequest  true  "Response text"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/caregiver/alerts/{id}/respond [post]
func (h *AlertHandler) RespondToAlert(c echo.Context) error {
	var req respondAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.alerts.RespondToAlert(c.Request().Context(), c.Param("id"), req.Response); err != nil {
		return err
	}

	metrics.AlertResponsesTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// MarkAlertRead moves an unread alert to read.
//
// @Summary      Mark alert read
// @Tags         alerts
// @Param        id  path  string  true  "Alert ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/caregiver/alerts/{id}/read [post]
func (h *AlertHandler) MarkAlertRead(c echo.Context) error {
	if err := h.alerts.MarkAlertRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
