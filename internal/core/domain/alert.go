package domain

import (
	"errors"
	"time"
)

// Severity classifies how urgent an alert is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// AlertStatus tracks how far an alert has been handled.
type AlertStatus string

const (
	AlertUnread    AlertStatus = "unread"
	AlertRead      AlertStatus = "read"
	AlertResponded AlertStatus = "responded"
)

var ErrAlertNotFound = errors.New("alert not found")

// Alert is a monitoring notification raised for a patient. Severity is a
// stored display field sourced from the monitoring pipeline, not computed here.
type Alert struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	PatientID   string      `json:"patient_id" bson:"patient_id"`
	PatientName string      `json:"patient_name" bson:"patient_name"`
	Message     string      `json:"message" bson:"message"`
	Severity    Severity    `json:"severity" bson:"severity"`
	Status      AlertStatus `json:"status" bson:"status"`
	Response    string      `json:"response,omitempty" bson:"response,omitempty"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
}
