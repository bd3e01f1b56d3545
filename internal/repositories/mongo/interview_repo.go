package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
)

// InterviewRepo wraps the interviews collection.
type InterviewRepo struct{ col *mongo.Collection }

func NewInterviewRepo(db *mongo.Database) *InterviewRepo {
	col := db.Collection("interviews")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interviewer_id", Value: 1}},
	})
	return &InterviewRepo{col: col}
}

func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	now := time.Now().UTC()
	iv.CreatedAt, iv.UpdatedAt = now, now
	if iv.Status == "" {
		iv.Status = models.InterviewScheduled
	}
	_, err := r.col.InsertOne(ctx, iv)
	return err
}

func (r *InterviewRepo) ByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// ByInterviewer lists an interviewer's interviews, most recently scheduled first.
func (r *InterviewRepo) ByInterviewer(ctx context.Context, interviewerID string) ([]models.Interview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_start_time", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"interviewer_id": interviewerID}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Interview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the stored document with the given one.
func (r *InterviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	iv.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": iv.ID}, iv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrInterviewNotFound
	}
	return nil
}

// CompletedUnexported lists completed interviews whose report has not been
// written by the export job yet.
func (r *InterviewRepo) CompletedUnexported(ctx context.Context) ([]models.Interview, error) {
	filter := bson.M{
		"status":             models.InterviewCompleted,
		"report_exported_at": nil,
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []models.Interview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewRepo) MarkReportExported(ctx context.Context, id string, ts time.Time) error {
	update := bson.M{"$set": bson.M{
		"report_exported_at": ts,
		"updated_at":         time.Now().UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrInterviewNotFound
	}
	return nil
}
