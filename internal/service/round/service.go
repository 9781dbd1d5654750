package round

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
	stateRepo repository.GameStateRepository
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	statsRepo repository.SimStatsRepository
	txManager trm.Manager
}

// NewRoundService создаёт сервис спинов барабанной семьи игр
func NewRoundService(
	gamesCfg config.GamesConfig,
	stateRepo repository.GameStateRepository,
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.SimStatsRepository,
	txManager trm.Manager,
) service.RoundService {
	return &serv{
		gamesCfg:  gamesCfg,
		stateRepo: stateRepo,
		userRepo:  userRepo,
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}

// newSeed собирает сид раунда: серверная энтропия плюс необязательная
// клиентская часть (provably fair). Дальше раунд полностью детерминирован
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
