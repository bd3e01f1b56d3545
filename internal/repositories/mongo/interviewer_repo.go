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

// InterviewerRepo wraps the interviewers collection.
type InterviewerRepo struct{ col *mongo.Collection }

// NewInterviewerRepo ensures a unique index on email.
func NewInterviewerRepo(db *mongo.Database) *InterviewerRepo {
	col := db.Collection("interviewers")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &InterviewerRepo{col: col}
}

func (r *InterviewerRepo) Create(ctx context.Context, iv *models.Interviewer) error {
	iv.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, iv)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateEmail
	}
	return err
}

func (r *InterviewerRepo) ByEmail(ctx context.Context, email string) (*models.Interviewer, error) {
	var iv models.Interviewer
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrInterviewerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewerRepo) ByID(ctx context.Context, id string) (*models.Interviewer, error) {
	var iv models.Interviewer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrInterviewerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
