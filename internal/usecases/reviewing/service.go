package reviewing

import (
	"context"
	"errors"
	"time"

	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRating = errors.New("avaliação deve estar entre 0 e 5")
	ErrShopNotFound  = errors.New("loja não encontrada")
)

// Reviewer registra avaliações de lojas e mantém os agregados de média e
// quantidade atualizados na própria loja
type Reviewer interface {
	AddRating(ctx context.Context, shopID string, userID int, value float64) (*domain.Rating, error)
}

type Service struct {
	ratingRepo repository.RatingRepository
	shopRepo   repository.ShopRepository
}

func NewService(ratingRepo repository.RatingRepository, shopRepo repository.ShopRepository) Reviewer {
	return &Service{
		ratingRepo: ratingRepo,
		shopRepo:   shopRepo,
	}
}

func (s *Service) AddRating(ctx context.Context, shopID string, userID int, value float64) (*domain.Rating, error) {
	if value < 0 || value > 5 {
		return nil, ErrInvalidRating
	}

	shop, err := s.shopRepo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if shop == nil {
		return nil, ErrShopNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        id,
		ShopID:    shopID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ratingRepo.AddRating(ctx, rating); err != nil {
		return nil, err
	}

	// Recalcula os agregados da loja. Uma falha aqui não invalida a
	// avaliação já registrada: o job periódico corrige o agregado depois.
	average, count, err := s.ratingRepo.AverageForShop(ctx, shopID, time.Time{})
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).
			Warn("Erro ao recalcular média de avaliações")
		return rating, nil
	}

	if err := s.shopRepo.UpdateRatingAggregates(ctx, shopID, average, count); err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).
			Warn("Erro ao atualizar agregados de avaliação da loja")
	}

	return rating, nil
}
