package config

import (
	"log/slog"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first environment file found among envFilePath (or .env
// when none is given) and processes the environment into an App.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using default .env")
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, apperrors.Internal(err, apperrors.WithDetail("processing environment"))
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, apperrors.FromValidation(cfg, err)
	}

	logger := slog.Default()
	logger.Info("App config loaded",
		"env", cfg.Env,
		"log_format", cfg.Log.Format,
		"exchange_api_url", cfg.Exchange.ApiUrl,
		"exchange_http_timeout", cfg.Exchange.HTTPTimeout,
		"smtp_host", cfg.SMTP.Host,
		"smtp_port", cfg.SMTP.Port,
		"smtp_username", cfg.SMTP.Username,
		"smtp_password", maskValue(cfg.SMTP.Password),
		"jwt_issuer", cfg.Jwt.Issuer,
		"jwt_secret", maskValue(cfg.Jwt.Secret),
		"jwt_expiry", cfg.Jwt.Expiry,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
