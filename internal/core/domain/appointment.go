package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// validAppointmentTransitions defines the allowed state machine transitions.
var validAppointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrAppointmentNotFound = errors.New("appointment not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validAppointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a doctor-side booking record.
type Appointment struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	PatientName string            `json:"patient_name" bson:"patient_name"`
	Date        string            `json:"appointment_date" bson:"appointment_date"`
	Time        string            `json:"appointment_time" bson:"appointment_time"`
	Reason      string            `json:"reason" bson:"reason"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}
