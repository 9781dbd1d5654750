package config

import (
	"time"

	"slotforge_backend/internal/engine"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GamesConfig — реестр игровых конфигураций, загруженных из YAML.
// После загрузки конфигурации неизменяемы, движок их никогда не меняет
type GamesConfig interface {
	Game(id string) (*engine.GameConfig, bool)
	Ticket(id string) (*engine.TicketConfig, bool)
	Games() []*engine.GameConfig
	Tickets() []*engine.TicketConfig
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
