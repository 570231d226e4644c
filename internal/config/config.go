package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Mongo           Mongo           `mapstructure:",squash"`
	Prefs           Prefs           `mapstructure:",squash"`
	Places          Places          `mapstructure:",squash"`
	Ranking         Ranking         `mapstructure:",squash"`
	RatingDeltaSync RatingDeltaSync `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Mongo struct {
	URI               string `mapstructure:"mongo_uri"`
	Database          string `mapstructure:"mongo_database"`
	ShopsCollection   string `mapstructure:"mongo_shops_collection"`
	RatingsCollection string `mapstructure:"mongo_ratings_collection"`
}

type Prefs struct {
	Path string `mapstructure:"prefs_path"`
}

type Places struct {
	BaseURL string `mapstructure:"places_base_url"`
	APIKey  string `mapstructure:"places_api_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Ranking struct {
	ShakeRadiusKm float64 `mapstructure:"shake_of_day_radius_km"`
	NearestCount  int     `mapstructure:"nearest_shops_count"`
}

type RatingDeltaSync struct {
	CronSchedule string `mapstructure:"rating_delta_sync_cron"`
	Enabled      bool   `mapstructure:"rating_delta_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shakemap")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "shakemap")
	viper.SetDefault("MONGO_SHOPS_COLLECTION", "shops")
	viper.SetDefault("MONGO_RATINGS_COLLECTION", "ratings")

	viper.SetDefault("PREFS_PATH", "shakemap_prefs.db")

	viper.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("PLACES_API_KEY", "your_api_key") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do ranking de lojas
	viper.SetDefault("SHAKE_OF_DAY_RADIUS_KM", 10.0) // raio do destaque do dia
	viper.SetDefault("NEAREST_SHOPS_COUNT", 3)       // lojas mais próximas exibidas

	// Defaults para sincronização do delta de avaliações
	viper.SetDefault("RATING_DELTA_SYNC_CRON", "0 * * * *") // Toda hora cheia
	viper.SetDefault("RATING_DELTA_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
