// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShopRepository interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
	GetShopByID(ctx context.Context, id string) (*domain.Shop, error)
	GetShopByPlaceID(ctx context.Context, placeID string) (*domain.Shop, error)
	CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	UpsertShop(ctx context.Context, shop *domain.Shop) error
	UpdateRatingAggregates(ctx context.Context, shopID string, average float64, count int) error
	UpdateRatingDelta(ctx context.Context, shopID string, delta float64) error
	WatchShops(ctx context.Context) (<-chan struct{}, func(), error)
}

// shopDocument é o esquema da coleção de lojas. Campos numéricos são `any`
// de propósito: documentos antigos ou escritos por clientes frouxos podem
// carregar números como string ou nulo, e a coerção acontece em um único
// passo na normalização do domínio.
type shopDocument struct {
	ID              string     `bson:"_id"`
	Name            string     `bson:"name"`
	Area            string     `bson:"area,omitempty"`
	Address         string     `bson:"address,omitempty"`
	GooglePlaceID   string     `bson:"googlePlaceId,omitempty"`
	Latitude        any        `bson:"latitude,omitempty"`
	Longitude       any        `bson:"longitude,omitempty"`
	Rating          any        `bson:"rating,omitempty"`
	RatingAverage   any        `bson:"ratingAverage,omitempty"`
	RatingCount     any        `bson:"ratingCount,omitempty"`
	RatingDelta24h  any        `bson:"ratingDelta24h,omitempty"`
	MilkshakePrice  any        `bson:"milkshakePrice,omitempty"`
	ThickshakePrice any        `bson:"thickshakePrice,omitempty"`
	CreatedAt       *time.Time `bson:"createdAt,omitempty"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty"`
}

type shopRepository struct {
	collection *mongo.Collection
}

func NewShopRepository(db *mongo.Database, collectionName string) ShopRepository {
	return &shopRepository{
		collection: db.Collection(collectionName),
	}
}

// ListShops retorna todas as lojas do diretório, mais recentes primeiro
func (r *shopRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o diretório de lojas: %w", err)
	}
	defer cursor.Close(ctx)

	shops := make([]domain.Shop, 0)
	for cursor.Next(ctx) {
		var doc shopDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("erro ao decodificar documento de loja: %w", err)
		}
		shops = append(shops, mapShopDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração do cursor: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) GetShopByID(ctx context.Context, id string) (*domain.Shop, error) {
	var doc shopDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja %s: %w", id, err)
	}

	shop := mapShopDocument(doc)
	return &shop, nil
}

func (r *shopRepository) GetShopByPlaceID(ctx context.Context, placeID string) (*domain.Shop, error) {
	var doc shopDocument
	err := r.collection.FindOne(ctx, bson.M{"googlePlaceId": placeID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja por place id: %w", err)
	}

	shop := mapShopDocument(doc)
	return &shop, nil
}

func (r *shopRepository) CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	now := time.Now().UTC()
	shop.CreatedAt = &now
	shop.UpdatedAt = &now

	if _, err := r.collection.InsertOne(ctx, buildShopDocument(shop)); err != nil {
		return nil, fmt.Errorf("erro ao criar loja: %w", err)
	}

	return shop, nil
}

// UpsertShop grava a loja preservando o createdAt existente quando o
// documento já existe. Usado pelo seed das lojas fixas, que precisa ser
// seguro de rodar mais de uma vez.
func (r *shopRepository) UpsertShop(ctx context.Context, shop *domain.Shop) error {
	now := time.Now().UTC()

	doc := buildShopDocument(shop)
	doc.CreatedAt = nil
	doc.UpdatedAt = &now

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": shop.ID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("erro ao gravar loja %s: %w", shop.ID, err)
	}

	return nil
}

func (r *shopRepository) UpdateRatingAggregates(ctx context.Context, shopID string, average float64, count int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": shopID}, bson.M{
		"$set": bson.M{
			"ratingAverage": average,
			"ratingCount":   count,
			"updatedAt":     time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao atualizar agregados de avaliação da loja %s: %w", shopID, err)
	}
	return nil
}

func (r *shopRepository) UpdateRatingDelta(ctx context.Context, shopID string, delta float64) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": shopID}, bson.M{
		"$set": bson.M{
			"ratingDelta24h": delta,
			"updatedAt":      time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao atualizar delta de avaliação da loja %s: %w", shopID, err)
	}
	return nil
}

// WatchShops abre um change stream sobre a coleção de lojas e sinaliza no
// canal retornado a cada alteração. A função de cancelamento encerra o
// stream; o canal é fechado quando o stream termina.
func (r *shopRepository) WatchShops(ctx context.Context) (<-chan struct{}, func(), error) {
	stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao abrir change stream de lojas: %w", err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	events := make(chan struct{}, 1)

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(streamCtx) {
			select {
			case events <- struct{}{}:
			default:
				// sinal já pendente, o assinante vai relistar de qualquer forma
			}
		}

		if err := stream.Err(); err != nil && streamCtx.Err() == nil {
			logrus.WithError(err).Warn("Change stream de lojas encerrado com erro")
		}
	}()

	return events, cancel, nil
}

func mapShopDocument(doc shopDocument) domain.Shop {
	return domain.NormalizeShop(domain.RawShop{
		ID:              doc.ID,
		Name:            doc.Name,
		Area:            doc.Area,
		Address:         doc.Address,
		GooglePlaceID:   doc.GooglePlaceID,
		Latitude:        doc.Latitude,
		Longitude:       doc.Longitude,
		Rating:          doc.Rating,
		RatingAverage:   doc.RatingAverage,
		RatingCount:     doc.RatingCount,
		RatingDelta24h:  doc.RatingDelta24h,
		MilkshakePrice:  doc.MilkshakePrice,
		ThickshakePrice: doc.ThickshakePrice,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	})
}

// buildShopDocument monta o documento estrito a gravar. Campos ausentes
// ficam de fora (omitempty sobre any nil), nunca são gravados como zero.
func buildShopDocument(shop *domain.Shop) shopDocument {
	doc := shopDocument{
		ID:            shop.ID,
		Name:          shop.Name,
		Area:          shop.Area,
		Address:       shop.Address,
		GooglePlaceID: shop.GooglePlaceID,
		CreatedAt:     shop.CreatedAt,
		UpdatedAt:     shop.UpdatedAt,
	}

	if shop.Latitude != nil {
		doc.Latitude = *shop.Latitude
	}
	if shop.Longitude != nil {
		doc.Longitude = *shop.Longitude
	}
	if shop.Rating != nil {
		doc.Rating = *shop.Rating
		doc.RatingAverage = *shop.Rating
	}
	if shop.RatingCount != nil {
		doc.RatingCount = *shop.RatingCount
	}
	if shop.RatingDelta24h != nil {
		doc.RatingDelta24h = *shop.RatingDelta24h
	}
	if shop.MilkshakePrice != nil {
		doc.MilkshakePrice = *shop.MilkshakePrice
	}
	if shop.ThickshakePrice != nil {
		doc.ThickshakePrice = *shop.ThickshakePrice
	}

	return doc
}
