package repository

import (
	"context"
	"interviewerbot/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionRepo is the question bank. Random retrieval excludes already-asked
// ids so a session never sees the same bank question twice.
type QuestionRepo interface {
	GetRandomByTopic(ctx context.Context, topic string, excludeIDs []string) (*model.BankQuestion, error)
	SearchByKeyword(ctx context.Context, keyword string, allowedTopics []string, excludeIDs []string) ([]*model.BankQuestion, error)
	GetByDifficulty(ctx context.Context, topic, difficulty string, limit int) ([]*model.BankQuestion, error)
	IncrementStats(ctx context.Context, id string, score int) error
	InsertMany(ctx context.Context, questions []*model.BankQuestion) error
	Topics(ctx context.Context) ([]string, error)
	TopicStats(ctx context.Context) ([]model.TopicStats, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{collection: db.Collection("questions")}
}

// toObjectIDs converts hex ids, silently dropping ids that are not ObjectIDs
// (resume question ids share the exclusion list but never hit the bank).
func toObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func (r *questionRepo) GetRandomByTopic(ctx context.Context, topic string, excludeIDs []string) (*model.BankQuestion, error) {
	match := bson.M{
		"topic":    topic,
		"isActive": true,
		"_id":      bson.M{"$nin": toObjectIDs(excludeIDs)},
	}

	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.BankQuestion
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil // topic exhausted
	}
	return questions[0], nil
}

func (r *questionRepo) SearchByKeyword(ctx context.Context, keyword string, allowedTopics []string, excludeIDs []string) ([]*model.BankQuestion, error) {
	query := bson.M{
		"isActive": true,
		"_id":      bson.M{"$nin": toObjectIDs(excludeIDs)},
		"$or": []bson.M{
			{"keywords": bson.M{"$regex": keyword, "$options": "i"}},
			{"question": bson.M{"$regex": keyword, "$options": "i"}},
		},
	}
	if len(allowedTopics) > 0 {
		query["topic"] = bson.M{"$in": allowedTopics}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetLimit(10))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.BankQuestion
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByDifficulty(ctx context.Context, topic, difficulty string, limit int) ([]*model.BankQuestion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"topic":      topic,
		"difficulty": difficulty,
		"isActive":   true,
	}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.BankQuestion
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) IncrementStats(ctx context.Context, id string, score int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil // not a bank question
	}

	var q model.BankQuestion
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&q); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return err
	}

	timesAsked := q.TimesAsked + 1
	avgScore := (q.AvgScore*q.TimesAsked + score) / timesAsked

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"timesAsked": timesAsked, "avgScore": avgScore},
	})
	return err
}

func (r *questionRepo) InsertMany(ctx context.Context, questions []*model.BankQuestion) error {
	docs := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		oid := primitive.NewObjectID()
		if q.ID != "" {
			parsed, err := primitive.ObjectIDFromHex(q.ID)
			if err != nil {
				return err
			}
			oid = parsed
		}
		q.ID = oid.Hex()
		docs = append(docs, bson.M{
			"_id":            oid,
			"topic":          q.Topic,
			"question":       q.Question,
			"expectedAnswer": q.ExpectedAnswer,
			"keywords":       q.Keywords,
			"difficulty":     q.Difficulty,
			"timesAsked":     q.TimesAsked,
			"avgScore":       q.AvgScore,
			"isActive":       true,
		})
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) Topics(ctx context.Context) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, "topic", bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			topics = append(topics, s)
		}
	}
	return topics, nil
}

func (r *questionRepo) TopicStats(ctx context.Context) ([]model.TopicStats, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isActive": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$topic",
			"count":         bson.M{"$sum": 1},
			"avgTimesAsked": bson.M{"$avg": "$timesAsked"},
			"avgScore":      bson.M{"$avg": "$avgScore"},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []model.TopicStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
