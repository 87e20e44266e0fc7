package repository

import (
	"context"
	"interviewerbot/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepo is the durable session store. All state machine mutations are
// read-modify-write against this store.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*model.Session, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{collection: db.Collection("sessions")}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.Session) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *sessionRepo) List(ctx context.Context, limit, offset int) ([]*model.Session, error) {
	opts := options.Find().
		SetSort(bson.M{"startedAt": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
