package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shakemap/shakemap-api/infrastructure/database/mongodb"
	"github.com/shakemap/shakemap-api/infrastructure/database/postgres"
	"github.com/shakemap/shakemap-api/infrastructure/integrator/places"
	"github.com/shakemap/shakemap-api/infrastructure/integrator/places/placesclient"
	"github.com/shakemap/shakemap-api/infrastructure/prefstore"
	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/api"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/scheduler"
	"github.com/shakemap/shakemap-api/internal/usecases/authenticating"
	"github.com/shakemap/shakemap-api/internal/usecases/favouriting"
	"github.com/shakemap/shakemap-api/internal/usecases/ranking"
	"github.com/shakemap/shakemap-api/internal/usecases/reviewing"
	"github.com/shakemap/shakemap-api/internal/usecases/shopkeeping"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	mongoConn := mongoconn(ctx, cfg.Mongo)
	defer mongoConn.Close(context.Background())

	prefStore, err := prefstore.NewSQLiteStore(ctx, cfg.Prefs.Path)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento local de preferências")
	}
	defer prefStore.Close()

	userRepo := repository.NewUserRepository(pgConn)
	shopRepo := repository.NewShopRepository(mongoConn.Database(), cfg.Mongo.ShopsCollection)
	ratingRepo := repository.NewRatingRepository(mongoConn.Database(), cfg.Mongo.RatingsCollection)

	authenticator := authenticating.NewService(userRepo, cfg)

	placesClient := placesclient.NewClient(cfg)
	placesService := places.New(cfg, placesClient)

	shopService := shopkeeping.NewService(shopRepo, placesService)
	rankingService := ranking.NewService(shopRepo, cfg)
	reviewService := reviewing.NewService(ratingRepo, shopRepo)
	favouriteService := favouriting.NewService(prefStore)

	// Garante que as lojas fixas existem no diretório remoto
	if err := shopService.SeedCoreShops(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao semear as lojas fixas no diretório remoto")
	}

	// Inicializa o agendador de sincronização do delta de avaliações
	ratingDeltaSyncService := scheduler.NewRatingDeltaSyncService(
		shopRepo,
		ratingRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := ratingDeltaSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do delta de avaliações")
	} else {
		logrus.Info("Agendador de sincronização do delta de avaliações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		shopService,
		rankingService,
		reviewService,
		favouriteService,
		placesService,
		authenticator,
		ratingDeltaSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// mongoconn cria uma conexão com o diretório remoto de lojas
func mongoconn(ctx context.Context, mongoConfig config.Mongo) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, mongoConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com MongoDB")
	}

	logrus.Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}
