package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name               string
	Env                string
	Port               string
	CORSAllowedOrigins string
	CompletionProvider string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		origins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if origins == "" {
			origins = "*"
		}
		provider := os.Getenv("COMPLETION_PROVIDER")
		if provider == "" {
			provider = "openrouter"
		}
		appConfig = &AppConfig{
			Name:               os.Getenv("APP_NAME"),
			Env:                env,
			Port:               port,
			CORSAllowedOrigins: origins,
			CompletionProvider: provider,
		}
	})
	return appConfig
}
