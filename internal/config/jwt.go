package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is required")
		}
		jwtConfig = &JWTConfig{
			Secret:   secret,
			TokenTTL: time.Hour,
		}
	})
	return jwtConfig
}
