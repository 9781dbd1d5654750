package sim

import (
	"slotforge_backend/internal/config"
	"slotforge_backend/internal/model"
	"slotforge_backend/internal/repository"
	"slotforge_backend/internal/service"
)

type serv struct {
	gamesCfg  config.GamesConfig
	statsRepo repository.SimStatsRepository
}

// NewSimService создаёт сервис пакетной проверки RTP
func NewSimService(gamesCfg config.GamesConfig, statsRepo repository.SimStatsRepository) service.SimService {
	return &serv{
		gamesCfg:  gamesCfg,
		statsRepo: statsRepo,
	}
}

// Stats — накопленная статистика реальных спинов
func (s *serv) Stats() model.SimSnapshot {
	return s.statsRepo.Snapshot()
}
