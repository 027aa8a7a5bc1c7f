package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Spaces   SpacesConfig
	Search   SearchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	MaxRequests        int
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	RetryAttempts int
}

// AuthConfig carries the shared secret the external auth service signs access
// tokens with. Tokens are only verified here, never issued.
type AuthConfig struct {
	JWTSecret string
}

type SpacesConfig struct {
	Endpoint            string
	AccessKey           string
	SecretKey           string
	UseSSL              bool
	NoteDataSpace       string
	ImageDataSpace      string
	DefaultThumbnailURI string
}

type SearchConfig struct {
	Address   string
	NoteIndex string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	env := getEnv("GO_ENV", "development")
	defaultRetries := 2
	defaultMaxRequests := 250
	if env == "production" {
		defaultRetries = 5
	}
	if env == "test" {
		defaultMaxRequests = 999
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5555"),
			Environment:        env,
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			MaxRequests:        getEnvAsInt("MAX_REQUESTS", defaultMaxRequests),
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "studysnap"),
			Password:      getEnv("DB_PASS", ""),
			Name:          getEnv("DB_NOTE_DATABASE", "studysnap_notedb"),
			SSLMode:       getEnv("DB_SSL_MODE", "disable"),
			RetryAttempts: getEnvAsInt("DB_RETRY_ATTEMPTS", defaultRetries),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev_secret_do_change_in_prod"),
		},
		Spaces: SpacesConfig{
			Endpoint:            getEnv("SPACES_ENDPOINT", "nyc3.digitaloceanspaces.com"),
			AccessKey:           getEnv("SPACES_KEY", ""),
			SecretKey:           getEnv("SPACES_SECRET", ""),
			UseSSL:              getEnvAsBool("SPACES_USE_SSL", true),
			NoteDataSpace:       getEnv("NOTE_DATA_SPACE", "studysnap-notes"),
			ImageDataSpace:      getEnv("IMAGE_DATA_SPACE", "studysnap-images"),
			DefaultThumbnailURI: getEnv("CLASS_THUMBNAIL_DEFAULT_URI", "default-classroom.jpg"),
		},
		Search: SearchConfig{
			Address:   getEnv("ES_ADDRESS", "http://localhost:9200"),
			NoteIndex: getEnv("ES_NOTE_INDEX", "notes"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
