package sim

import (
	"context"
	"testing"

	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/model"
	"slotforge_backend/internal/repository/sim_stats_repo"
)

// Стаб реестра конфигураций с одной линейной игрой
type stubGames struct {
	game *engine.GameConfig
}

func (s *stubGames) Game(id string) (*engine.GameConfig, bool) {
	if s.game != nil && s.game.ID == id {
		return s.game, true
	}
	return nil, false
}

func (s *stubGames) Ticket(id string) (*engine.TicketConfig, bool) { return nil, false }
func (s *stubGames) Games() []*engine.GameConfig                   { return []*engine.GameConfig{s.game} }
func (s *stubGames) Tickets() []*engine.TicketConfig               { return nil }

func testGame() *engine.GameConfig {
	return &engine.GameConfig{
		ID:        "test-lines",
		Rows:      3,
		Cols:      5,
		Mechanism: engine.MechanismLines,
		Symbols: []engine.SymbolDef{
			{ID: "A", Weight: 5},
			{ID: "B", Weight: 5},
			{ID: "C", Weight: 5},
			{ID: "D", Weight: 5},
		},
		Lines: []engine.LineDefinition{
			{0, 0, 0, 0, 0},
			{1, 1, 1, 1, 1},
			{2, 2, 2, 2, 2},
		},
		Paytable: engine.Paytable{
			"A": {3: 50, 4: 200, 5: 1000},
			"B": {3: 30, 4: 100, 5: 500},
			"C": {3: 20, 4: 60, 5: 200},
			"D": {3: 10, 4: 30, 5: 100},
		},
	}
}

func newTestService() *serv {
	return &serv{
		gamesCfg:  &stubGames{game: testGame()},
		statsRepo: sim_stats_repo.NewSimStatsRepository(),
	}
}

// Один и тот же базовый сид даёт один и тот же отчёт
func TestRunDeterministic(t *testing.T) {
	s := newTestService()
	req := model.SimRequest{GameID: "test-lines", Rounds: 500, Bet: 100, BaseSeed: "abc"}

	first, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if first.TotalPayout != second.TotalPayout {
		t.Errorf("TotalPayout = %d и %d, прогон не детерминирован", first.TotalPayout, second.TotalPayout)
	}
	if first.HitRate != second.HitRate {
		t.Errorf("HitRate = %v и %v", first.HitRate, second.HitRate)
	}
}

// Итог не зависит от числа воркеров: сид определяется номером раунда
func TestRunWorkerCountIndependent(t *testing.T) {
	s := newTestService()

	one, err := s.Run(context.Background(), model.SimRequest{
		GameID: "test-lines", Rounds: 400, Bet: 100, BaseSeed: "w", Workers: 1,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	many, err := s.Run(context.Background(), model.SimRequest{
		GameID: "test-lines", Rounds: 400, Bet: 100, BaseSeed: "w", Workers: 7,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if one.TotalPayout != many.TotalPayout {
		t.Errorf("TotalPayout = %d (1 воркер) и %d (7 воркеров)", one.TotalPayout, many.TotalPayout)
	}
	if one.MaxPayout != many.MaxPayout {
		t.Errorf("MaxPayout = %d и %d", one.MaxPayout, many.MaxPayout)
	}
}

func TestRunValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.SimRequest
	}{
		{"нулевое число раундов", model.SimRequest{GameID: "test-lines", Rounds: 0, Bet: 100}},
		{"нулевая ставка", model.SimRequest{GameID: "test-lines", Rounds: 10, Bet: 0}},
		{"неизвестная игра", model.SimRequest{GameID: "nope", Rounds: 10, Bet: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Run(ctx, tc.req); err == nil {
				t.Error("ожидалась ошибка")
			}
		})
	}
}

// Отменённый контекст прерывает прогон
func TestRunCancelled(t *testing.T) {
	s := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, model.SimRequest{GameID: "test-lines", Rounds: 100000, Bet: 100})
	if err == nil {
		t.Error("ожидалась ошибка отмены")
	}
}
