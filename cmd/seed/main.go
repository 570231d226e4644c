package main

import (
	"context"
	"time"

	"github.com/shakemap/shakemap-api/infrastructure/database/mongodb"
	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/shopkeeping"
	"github.com/sirupsen/logrus"
)

// Grava o conjunto fixo de lojas no diretório remoto. Seguro de rodar mais
// de uma vez: lojas existentes são atualizadas, nunca duplicadas.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := mongodb.NewConnection(ctx, cfg.Mongo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}
	defer conn.Close(context.Background())

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com MongoDB")
	}

	shopRepo := repository.NewShopRepository(conn.Database(), cfg.Mongo.ShopsCollection)
	shopService := shopkeeping.NewService(shopRepo, nil)

	start := time.Now()
	if err := shopService.SeedCoreShops(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao semear as lojas fixas")
	}

	logrus.WithFields(logrus.Fields{
		"shops":    len(domain.CoreShops()),
		"duration": time.Since(start).String(),
	}).Info("Lojas fixas gravadas com sucesso")
}
