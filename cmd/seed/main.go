package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewerbot/internal/model"
	"interviewerbot/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "interviewerbot"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(mongoDB)

	// Reseed from scratch so reruns stay idempotent
	if err := db.Collection("questions").Drop(ctx); err != nil {
		log.Fatalf("Failed to drop questions collection: %v", err)
	}

	repo := repository.NewQuestionRepo(db)

	total := 0
	for topic, questions := range seedQuestions {
		batch := make([]*model.BankQuestion, 0, len(questions))
		for i := range questions {
			q := questions[i]
			q.Topic = topic
			q.Difficulty = "medium"
			q.IsActive = true
			batch = append(batch, &q)
		}
		if err := repo.InsertMany(ctx, batch); err != nil {
			log.Fatalf("Failed to seed %s questions: %v", topic, err)
		}
		log.Printf("Seeded %d %s questions", len(batch), topic)
		total += len(batch)
	}

	log.Printf("Done. Seeded %d questions across %d topics.", total, len(seedQuestions))
}
