// File: database/repository/resource/crud.go
package resourceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"resortly/models"
)

func (r *mongoResourceRepo) CreateChalet(ctx context.Context, ch *models.Chalet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ch.ID == "" {
		ch.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ch.CreatedAt = now
	ch.UpdatedAt = now
	if _, err := r.chalets.InsertOne(ctx, ch); err != nil {
		return fmt.Errorf("failed to insert chalet: %w", err)
	}
	return nil
}

func (r *mongoResourceRepo) GetChalet(ctx context.Context, id string) (*models.Chalet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ch models.Chalet
	err := r.chalets.FindOne(ctx, bson.M{"id": id}).Decode(&ch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chalet %s: %w", id, err)
	}
	return &ch, nil
}

func (r *mongoResourceRepo) ListChalets(ctx context.Context, activeOnly bool) ([]models.Chalet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.chalets.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list chalets: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Chalet
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode chalets: %w", err)
	}
	return out, nil
}

func (r *mongoResourceRepo) UpdateChalet(ctx context.Context, ch *models.Chalet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ch.UpdatedAt = time.Now().UTC()
	res, err := r.chalets.ReplaceOne(ctx, bson.M{"id": ch.ID}, ch)
	if err != nil {
		return fmt.Errorf("failed to update chalet %s: %w", ch.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoResourceRepo) CreateSession(ctx context.Context, s *models.SharedSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if _, err := r.sessions.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *mongoResourceRepo) GetSession(ctx context.Context, id string) (*models.SharedSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.SharedSession
	err := r.sessions.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	return &s, nil
}

func (r *mongoResourceRepo) ListSessions(ctx context.Context, activeOnly bool) ([]models.SharedSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.sessions.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.SharedSession
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return out, nil
}

func (r *mongoResourceRepo) UpdateSession(ctx context.Context, s *models.SharedSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.UpdatedAt = time.Now().UTC()
	res, err := r.sessions.ReplaceOne(ctx, bson.M{"id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", s.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
