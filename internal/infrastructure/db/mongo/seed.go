package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

const demoPassword = "demo123"

// Seed loads the demo fixtures: one account per portal role, a directory
// extra, a patient profile with vitals, and sample alerts, appointments, and
// check-ins. Upserts by _id, so reseeding an existing database is safe.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()
	users := []domain.User{
		{ID: "1", Name: "John Doe", Email: "patient@demo.com", Role: domain.RolePatient},
		{ID: "2", Name: "Dr. Sarah Smith", Email: "doctor@demo.com", Role: domain.RoleDoctor},
		{ID: "3", Name: "Jane Wilson", Email: "caregiver@demo.com", Role: domain.RoleCaregiver},
		{ID: "4", Name: "Mike Johnson", Email: "admin@demo.com", Role: domain.RoleAdmin},
		{ID: "5", Name: "Emily Parker", Email: "emily@demo.com", Role: domain.RolePatient},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		users[i].Status = domain.StatusActive
		users[i].CreatedAt = now.AddDate(0, -6, i)
		users[i].UpdatedAt = users[i].CreatedAt
	}
	// the directory extra never logs in
	users[4].Status = domain.StatusInactive

	userColl := db.Collection(userCollection)
	for _, u := range users {
		if err := upsert(ctx, userColl, u.ID, toUserDoc(&u)); err != nil {
			return err
		}
	}

	profile := domain.PatientProfile{
		ID:        "1",
		Name:      "John Doe",
		Age:       34,
		ERIScore:  72,
		RiskLevel: domain.RiskLow,
		Vitals:    domain.Vitals{HeartRate: 72, HRV: 65, SleepHours: 7.5, StressLevel: 3},
		Recommendations: []domain.Recommendation{
			{ID: "r1", Title: "Morning walk", Description: "A 20 minute walk keeps your stress level down.", Type: "activity", Priority: "medium"},
			{ID: "r2", Title: "Wind-down routine", Description: "Screens off an hour before bed improves sleep quality.", Type: "sleep", Priority: "high"},
		},
	}
	patients := []domain.PatientSummary{
		{ID: "1", Name: "John Doe", Age: 34, ERIScore: 72, RiskLevel: domain.RiskLow, LastCheckIn: now.Add(-6 * time.Hour)},
		{ID: "6", Name: "Robert Chen", Age: 58, ERIScore: 41, RiskLevel: domain.RiskHigh, LastCheckIn: now.Add(-52 * time.Hour)},
		{ID: "7", Name: "Anna Lopez", Age: 45, ERIScore: 55, RiskLevel: domain.RiskMedium, LastCheckIn: now.Add(-20 * time.Hour)},
	}

	patientColl := db.Collection(patientCollection)
	for _, p := range patients {
		doc := bson.M{
			"_id": p.ID, "name": p.Name, "age": p.Age, "eri_score": p.ERIScore,
			"risk_level": string(p.RiskLevel), "last_check_in": p.LastCheckIn,
		}
		if p.ID == profile.ID {
			doc["vitals"] = profile.Vitals
			doc["recommendations"] = profile.Recommendations
		}
		if err := upsert(ctx, patientColl, p.ID, doc); err != nil {
			return err
		}
	}

	alerts := []domain.Alert{
		{ID: "al1", PatientID: "1", PatientName: "John Doe", Message: "Elevated stress detected during afternoon", Severity: domain.SeverityHigh, Status: domain.AlertUnread, Timestamp: now.Add(-2 * time.Hour)},
		{ID: "al2", PatientID: "1", PatientName: "John Doe", Message: "Missed morning check-in", Severity: domain.SeverityMedium, Status: domain.AlertRead, Timestamp: now.Add(-26 * time.Hour)},
		{ID: "al3", PatientID: "6", PatientName: "Robert Chen", Message: "Sleep quality declining over the past week", Severity: domain.SeverityLow, Status: domain.AlertResponded, Response: "Scheduled a call to review sleep habits", Timestamp: now.Add(-48 * time.Hour)},
		{ID: "al4", PatientID: "6", PatientName: "Robert Chen", Message: "Heart rate spike during rest period", Severity: domain.SeverityHigh, Status: domain.AlertUnread, Timestamp: now.Add(-1 * time.Hour)},
	}
	alertColl := db.Collection(alertCollection)
	for _, a := range alerts {
		doc := bson.M{
			"_id": a.ID, "patient_id": a.PatientID, "patient_name": a.PatientName,
			"message": a.Message, "severity": string(a.Severity), "status": string(a.Status),
			"timestamp": a.Timestamp,
		}
		if a.Response != "" {
			doc["response"] = a.Response
		}
		if err := upsert(ctx, alertColl, a.ID, doc); err != nil {
			return err
		}
	}

	appointments := []domain.Appointment{
		{ID: "ap1", PatientName: "John Doe", Date: "2026-09-02", Time: "10:00", Reason: "Follow-up consultation", Status: domain.AppointmentConfirmed, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: "ap2", PatientName: "Emily Parker", Date: "2026-09-03", Time: "14:30", Reason: "Initial assessment", Status: domain.AppointmentPending, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "ap3", PatientName: "Robert Chen", Date: "2026-09-04", Time: "09:15", Reason: "Medication review", Status: domain.AppointmentPending, CreatedAt: now.Add(-24 * time.Hour)},
	}
	apptColl := db.Collection(appointmentCollection)
	for _, a := range appointments {
		if err := upsert(ctx, apptColl, a.ID, bson.M{
			"_id": a.ID, "patient_name": a.PatientName, "appointment_date": a.Date,
			"appointment_time": a.Time, "reason": a.Reason, "status": string(a.Status),
			"created_at": a.CreatedAt,
		}); err != nil {
			return err
		}
	}

	checkIns := []domain.CheckIn{
		{ID: "c1", PatientID: "1", Date: now.AddDate(0, 0, -2).Format("2006-01-02"), Mood: "okay", SleepHours: 6, HeartRate: 78, BloodPressure: "122/80", Notes: "Felt tired after work"},
		{ID: "c2", PatientID: "1", Date: now.AddDate(0, 0, -1).Format("2006-01-02"), Mood: "good", SleepHours: 7.5, HeartRate: 72, BloodPressure: "118/76"},
		{ID: "c3", PatientID: "1", Date: now.Format("2006-01-02"), Mood: "great", SleepHours: 8, HeartRate: 70, BloodPressure: "117/75", Notes: "Morning walk before breakfast"},
	}
	checkInColl := db.Collection(checkInCollection)
	for _, c := range checkIns {
		if err := upsert(ctx, checkInColl, c.ID, bson.M{
			"_id": c.ID, "patient_id": c.PatientID, "date": c.Date, "mood": c.Mood,
			"sleep_hours": c.SleepHours, "heart_rate": c.HeartRate,
			"blood_pressure": c.BloodPressure, "notes": c.Notes,
		}); err != nil {
			return err
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("patients", len(patients)).
		Int("alerts", len(alerts)).
		Int("appointments", len(appointments)).
		Int("check_ins", len(checkIns)).
		Msg("demo data seeded")
	return nil
}

func upsert(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("seed %s/%s: %w", coll.Name(), id, err)
	}
	return nil
}
