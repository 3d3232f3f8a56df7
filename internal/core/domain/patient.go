package domain

import (
	"errors"
	"time"
)

// RiskLevel is the display classification attached to an ERI score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientSummary is the roster row shown to doctors.
type PatientSummary struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Age         int       `json:"age" bson:"age"`
	ERIScore    int       `json:"eri_score" bson:"eri_score"`
	RiskLevel   RiskLevel `json:"risk_level" bson:"risk_level"`
	LastCheckIn time.Time `json:"last_check_in" bson:"last_check_in"`
}

// Vitals holds the latest readings displayed on a patient dashboard.
type Vitals struct {
	HeartRate   int     `json:"heart_rate" bson:"heart_rate"`
	HRV         int     `json:"hrv" bson:"hrv"`
	SleepHours  float64 `json:"sleep_hours" bson:"sleep_hours"`
	StressLevel int     `json:"stress_level" bson:"stress_level"`
}

// Recommendation is a wellness suggestion surfaced to the patient.
type Recommendation struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Type        string `json:"type" bson:"type"`
	Priority    string `json:"priority" bson:"priority"`
}

// PatientProfile is the full per-patient view backing the patient portal.
// ERI score and risk level are stored display fields.
type PatientProfile struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	Name            string           `json:"name" bson:"name"`
	Age             int              `json:"age" bson:"age"`
	ERIScore        int              `json:"eri_score" bson:"eri_score"`
	RiskLevel       RiskLevel        `json:"risk_level" bson:"risk_level"`
	Vitals          Vitals           `json:"vitals" bson:"vitals"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations"`
}

// CheckIn is one daily entry in the caregiver timeline.
type CheckIn struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	PatientID     string  `json:"patient_id" bson:"patient_id"`
	Date          string  `json:"date" bson:"date"`
	Mood          string  `json:"mood" bson:"mood"`
	SleepHours    float64 `json:"sleep_hours" bson:"sleep_hours"`
	HeartRate     int     `json:"heart_rate" bson:"heart_rate"`
	BloodPressure string  `json:"blood_pressure" bson:"blood_pressure"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`
}
