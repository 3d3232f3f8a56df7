package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

const alertCollection = "alerts"

// AlertRepository persists monitoring alerts.
type AlertRepository struct {
	coll *mongo.Collection
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{coll: db.Collection(alertCollection)}
}

// EnsureIndexes creates the patient_id and timestamp indexes.
func (r *AlertRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create alert indexes: %w", err)
	}
	return nil
}

// List returns the whole feed, newest first.
func (r *AlertRepository) List(ctx context.Context) ([]domain.Alert, error) {
	return r.find(ctx, bson.M{})
}

// ListByPatient returns one patient's alerts, newest first.
func (r *AlertRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.Alert, error) {
	return r.find(ctx, bson.M{"patient_id": patientID})
}

func (r *AlertRepository) find(ctx context.Context, query bson.M) ([]domain.Alert, error) {
	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Alert
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return out, nil
}

func (r *AlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	var a domain.Alert
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("find alert: %w", err)
	}
	return &a, nil
}

func (r *AlertRepository) SetStatus(ctx context.Context, id string, status domain.AlertStatus, response string) error {
	set := bson.M{"status": string(status)}
	if response != "" {
		set["response"] = response
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update alert status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}
