package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

// TranscriptRepo wraps the transcripts collection.
type TranscriptRepo struct{ col *mongo.Collection }

func NewTranscriptRepo(db *mongo.Database) *TranscriptRepo {
	col := db.Collection("transcripts")
	// one entry per candidate per question
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "interview_id", Value: 1},
			{Key: "candidate_id", Value: 1},
			{Key: "question_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return &TranscriptRepo{col: col}
}

// Upsert writes the entry for (interview, candidate, question), overwriting a
// previous answer to the same question.
func (r *TranscriptRepo) Upsert(ctx context.Context, t *models.Transcript) error {
	now := time.Now().UTC()
	filter := bson.M{
		"interview_id": t.InterviewID,
		"candidate_id": t.CandidateID,
		"question_id":  t.QuestionID,
	}
	update := bson.M{
		"$set": bson.M{
			"question_text": t.QuestionText,
			"answer_text":   t.AnswerText,
			"score":         t.Score,
			"feedback":      t.Feedback,
			"submitted_at":  t.SubmittedAt,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":          t.ID,
			"interview_id": t.InterviewID,
			"candidate_id": t.CandidateID,
			"question_id":  t.QuestionID,
			"created_at":   now,
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// ByCandidate lists a candidate's entries in answer order.
func (r *TranscriptRepo) ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error) {
	filter := bson.M{"interview_id": interviewID, "candidate_id": candidateID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Transcript
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountSubmitted aggregates submitted answers per candidate. Entries whose
// submitted_at is null do not count. Candidates with no entries are absent
// from the result map.
func (r *TranscriptRepo) CountSubmitted(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"interview_id": interviewID,
			"candidate_id": bson.M{"$in": candidateIDs},
			"submitted_at": bson.M{"$ne": nil},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$candidate_id",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		CandidateID string `bson:"_id"`
		Count       int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CandidateID] = row.Count
	}
	return counts, nil
}

func (r *TranscriptRepo) DeleteByInterview(ctx context.Context, interviewID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"interview_id": interviewID})
	return err
}
