package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

const (
	patientCollection = "patients"
	checkInCollection = "check_ins"
)

// PatientRepository reads patient display data. Profiles and roster rows live
// in the patients collection; daily check-ins live in their own collection
// keyed by patient_id.
type PatientRepository struct {
	patients *mongo.Collection
	checkIns *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{
		patients: db.Collection(patientCollection),
		checkIns: db.Collection(checkInCollection),
	}
}

// EnsureIndexes creates the check-in lookup index.
func (r *PatientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.checkIns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create check-in indexes: %w", err)
	}
	return nil
}

// ListSummaries returns the roster ordered by name.
func (r *PatientRepository) ListSummaries(ctx context.Context) ([]domain.PatientSummary, error) {
	cur, err := r.patients.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.PatientSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return out, nil
}

func (r *PatientRepository) FindProfile(ctx context.Context, patientID string) (*domain.PatientProfile, error) {
	var p domain.PatientProfile
	if err := r.patients.FindOne(ctx, bson.M{"_id": patientID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

// ListCheckIns returns a patient's daily entries, newest first.
func (r *PatientRepository) ListCheckIns(ctx context.Context, patientID string) ([]domain.CheckIn, error) {
	cur, err := r.checkIns.Find(ctx, bson.M{"patient_id": patientID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.CheckIn
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode check-ins: %w", err)
	}
	return out, nil
}
