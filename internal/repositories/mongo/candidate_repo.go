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

// CandidateRepo wraps the candidates collection.
type CandidateRepo struct{ col *mongo.Collection }

func NewCandidateRepo(db *mongo.Database) *CandidateRepo {
	col := db.Collection("candidates")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interview_id", Value: 1}},
	})
	return &CandidateRepo{col: col}
}

func (r *CandidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if c.Status == "" {
		c.Status = models.CandidateInvited
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CandidateRepo) ByID(ctx context.Context, id string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ByInterview lists an interview's candidates in invitation order.
func (r *CandidateRepo) ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"interview_id": interviewID}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Candidate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CandidateRepo) SetStatus(ctx context.Context, id string, status models.CandidateStatus) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepo) DeleteByInterview(ctx context.Context, interviewID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"interview_id": interviewID})
	return err
}
