package ticket

import (
	"crypto/rand"
	"encoding/hex"

	"slotforge_backend/internal/config"
	"slotforge_backend/internal/repository"
	"slotforge_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gamesCfg  config.GamesConfig
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	statsRepo repository.SimStatsRepository
	txManager trm.Manager
}

// NewTicketService создаёт сервис скретч-билетов
func NewTicketService(
	gamesCfg config.GamesConfig,
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.SimStatsRepository,
	txManager trm.Manager,
) service.TicketService {
	return &serv{
		gamesCfg:  gamesCfg,
		userRepo:  userRepo,
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}

func newSeed(clientSeed string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	serverSeed := hex.EncodeToString(b)
	if clientSeed == "" {
		return serverSeed, nil
	}
	return clientSeed + ":" + serverSeed, nil
}
