package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// RatingDeltaSyncConfig representa a configuração do agendador do delta de
// avaliações
type RatingDeltaSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RatingDeltaSyncService recalcula periodicamente a variação da média de
// avaliações de cada loja nas últimas 24 horas. O delta alimenta a escolha
// do destaque do dia.
type RatingDeltaSyncService struct {
	scheduler           *gocron.Scheduler
	config              RatingDeltaSyncConfig
	shopRepo            repository.ShopRepository
	ratingRepo          repository.RatingRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRatingDeltaSyncService cria uma nova instância do serviço de
// sincronização do delta de avaliações
func NewRatingDeltaSyncService(
	shopRepo repository.ShopRepository,
	ratingRepo repository.RatingRepository,
	appConfig *config.Config,
) *RatingDeltaSyncService {
	syncConfig := RatingDeltaSyncConfig{
		CronSchedule: appConfig.RatingDeltaSync.CronSchedule,
		SyncEnabled:  appConfig.RatingDeltaSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do delta de avaliações carregada")

	return &RatingDeltaSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		shopRepo:   shopRepo,
		ratingRepo: ratingRepo,
	}
}

// Start inicia o agendador
func (s *RatingDeltaSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do delta de avaliações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do delta de avaliações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllRatingDeltas(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do delta de avaliações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do delta de avaliações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllRatingDeltas recalcula o delta de todas as lojas cadastradas
func (s *RatingDeltaSyncService) syncAllRatingDeltas(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do delta de avaliações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização do delta de avaliações")

	shops, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lojas para sincronização do delta de avaliações")
		return
	}

	updated := 0
	for _, shop := range shops {
		if s.processShopRatingDelta(ctx, shop) {
			updated++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"shops":    len(shops),
		"updated":  updated,
	}).Info("Sincronização do delta de avaliações concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processShopRatingDelta recalcula média, quantidade e delta de uma loja.
// Retorna true quando a loja foi atualizada.
func (s *RatingDeltaSyncService) processShopRatingDelta(ctx context.Context, shop domain.Shop) bool {
	now := time.Now().UTC()

	currentAverage, currentCount, err := s.ratingRepo.AverageForShop(ctx, shop.ID, time.Time{})
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shop.ID).
			Error("Erro ao calcular média atual de avaliações")
		return false
	}

	// Loja sem nenhuma avaliação registrada fica fora do cálculo
	if currentCount == 0 {
		return false
	}

	pastAverage, pastCount, err := s.ratingRepo.AverageForShop(ctx, shop.ID, now.Add(-24*time.Hour))
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shop.ID).
			Error("Erro ao calcular média de avaliações de 24h atrás")
		return false
	}

	delta := ComputeRatingDelta(currentAverage, pastAverage, pastCount)

	if err := s.shopRepo.UpdateRatingDelta(ctx, shop.ID, delta); err != nil {
		logrus.WithError(err).WithField("shop_id", shop.ID).
			Error("Erro ao gravar delta de avaliações")
		return false
	}

	if err := s.shopRepo.UpdateRatingAggregates(ctx, shop.ID, currentAverage, currentCount); err != nil {
		logrus.WithError(err).WithField("shop_id", shop.ID).
			Error("Erro ao gravar agregados de avaliações")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"shop_id": shop.ID,
		"average": currentAverage,
		"count":   currentCount,
		"delta":   delta,
	}).Debug("Delta de avaliações atualizado")

	return true
}

// ComputeRatingDelta calcula a variação da média em relação à linha de
// base de 24 horas atrás. Quando a loja não tinha avaliações há 24 horas a
// linha de base é zero, então toda a média atual conta como variação.
func ComputeRatingDelta(currentAverage, pastAverage float64, pastCount int) float64 {
	if pastCount == 0 {
		return currentAverage
	}
	return currentAverage - pastAverage
}

// TriggerManualSync inicia manualmente uma sincronização do delta de avaliações
func (s *RatingDeltaSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do delta de avaliações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do delta de avaliações")
	go s.syncAllRatingDeltas(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RatingDeltaSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
