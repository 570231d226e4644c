package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shakemap/shakemap-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RatingRepository interface {
	AddRating(ctx context.Context, rating *domain.Rating) error
	// AverageForShop calcula a média das avaliações da loja criadas até o
	// instante `until`. Um `until` zero considera todas as avaliações.
	AverageForShop(ctx context.Context, shopID string, until time.Time) (average float64, count int, err error)
}

type ratingDocument struct {
	ID        string    `bson:"_id"`
	ShopID    string    `bson:"shopId"`
	UserID    int       `bson:"userId,omitempty"`
	Value     float64   `bson:"value"`
	CreatedAt time.Time `bson:"createdAt"`
}

type ratingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database, collectionName string) RatingRepository {
	return &ratingRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *ratingRepository) AddRating(ctx context.Context, rating *domain.Rating) error {
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	doc := ratingDocument{
		ID:        rating.ID,
		ShopID:    rating.ShopID,
		UserID:    rating.UserID,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("erro ao gravar avaliação da loja %s: %w", rating.ShopID, err)
	}

	return nil
}

func (r *ratingRepository) AverageForShop(ctx context.Context, shopID string, until time.Time) (float64, int, error) {
	filter := bson.M{"shopId": shopID}
	if !until.IsZero() {
		filter["createdAt"] = bson.M{"$lt": until}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao consultar avaliações da loja %s: %w", shopID, err)
	}
	defer cursor.Close(ctx)

	var sum float64
	var count int

	for cursor.Next(ctx) {
		var doc ratingDocument
		if err := cursor.Decode(&doc); err != nil {
			return 0, 0, fmt.Errorf("erro ao decodificar avaliação: %w", err)
		}
		sum += doc.Value
		count++
	}
	if err := cursor.Err(); err != nil {
		return 0, 0, fmt.Errorf("erro durante a iteração de avaliações: %w", err)
	}

	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}
