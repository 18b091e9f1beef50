package config

import (
	"fmt"
	"log"
	"time"

	"github.com/SscSPs/user_auth_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is constructed once in main and
// injected into every component's constructor; nothing reads it globally.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Token signing
	JWTSecret    string
	JWTAlgorithm string
	JWTIssuer    string
	// Access tokens live for hours, refresh tokens for days.
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenExpiryDuration time.Duration

	// Refresh token cookie
	RefreshTokenCookieName string
	RefreshTokenCookiePath string

	// Password hashing costs
	HasherParams utils.Argon2Params

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "devsecret-change-me-before-production")
	viper.SetDefault("JWT_ALGORITHM", "HS256")
	viper.SetDefault("JWT_ISSUER", "user-auth-app")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_HOURS", 30)
	viper.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refresh_token")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/")
	viper.SetDefault("ARGON2_MEMORY_KIB", int(utils.DefaultArgon2Params.Memory))
	viper.SetDefault("ARGON2_TIME_COST", int(utils.DefaultArgon2Params.Time))
	viper.SetDefault("ARGON2_PARALLELISM", int(utils.DefaultArgon2Params.Parallelism))
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "devsecret-change-me-before-production" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Only symmetric HS256 is supported; reject anything else up front rather
	// than letting token verification fail obscurely later.
	cfg.JWTAlgorithm = viper.GetString("JWT_ALGORITHM")
	if cfg.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q: only HS256 is supported", cfg.JWTAlgorithm)
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	accessHours := viper.GetInt("ACCESS_TOKEN_EXPIRE_HOURS")
	if accessHours <= 0 {
		accessHours = 30
		log.Printf("Warning: Invalid ACCESS_TOKEN_EXPIRE_HOURS. Defaulting to %d hours.\n", accessHours)
	}
	cfg.AccessTokenExpiryDuration = time.Duration(accessHours) * time.Hour

	refreshDays := viper.GetInt("REFRESH_TOKEN_EXPIRE_DAYS")
	if refreshDays <= 0 {
		refreshDays = 7
		log.Printf("Warning: Invalid REFRESH_TOKEN_EXPIRE_DAYS. Defaulting to %d days.\n", refreshDays)
	}
	cfg.RefreshTokenExpiryDuration = time.Duration(refreshDays) * 24 * time.Hour

	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.HasherParams = utils.Argon2Params{
		Memory:      uint32(viper.GetInt("ARGON2_MEMORY_KIB")),
		Time:        uint32(viper.GetInt("ARGON2_TIME_COST")),
		Parallelism: uint8(viper.GetInt("ARGON2_PARALLELISM")),
	}
	if cfg.HasherParams.Memory == 0 || cfg.HasherParams.Time == 0 || cfg.HasherParams.Parallelism == 0 {
		log.Println("Warning: Invalid argon2 cost configuration. Falling back to defaults.")
		cfg.HasherParams = utils.DefaultArgon2Params
	}

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
