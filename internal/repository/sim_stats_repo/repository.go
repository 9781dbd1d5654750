package sim_stats_repo

import (
	"sync"

	"slotforge_backend/internal/model"
	"slotforge_backend/internal/repository"
)

// Накопленная статистика реальных спинов. Живёт в памяти процесса:
// это рабочий индикатор RTP, а не журнал — журналом служит rounds
type StatsRepo struct {
	mtx   sync.RWMutex
	state model.SimSnapshot
}

func NewSimStatsRepository() repository.SimStatsRepository {
	return &StatsRepo{}
}

// Update учитывает один спин
func (r *StatsRepo) Update(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += int64(bet)
	r.state.TotalPayout += int64(payout)
	if r.state.TotalBet > 0 {
		r.state.RTP = float64(r.state.TotalPayout) / float64(r.state.TotalBet) * 100
	}
}

// Snapshot возвращает копию текущего состояния
func (r *StatsRepo) Snapshot() model.SimSnapshot {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}
