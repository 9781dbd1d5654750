package converter

import (
	"errors"
	"time"

	"slotforge_backend/internal/api/dto/round"
	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/model"

	"gopkg.in/yaml.v3"
)

func ToSpin(req round.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		GameID:     req.GameID,
		Bet:        req.Bet,
		ClientSeed: req.ClientSeed,
	}
}

// ToPreview разбирает YAML-конфигурацию из мастера настройки
func ToPreview(req round.PreviewRequest) (model.PreviewRequest, error) {
	out := model.PreviewRequest{
		GameID: req.GameID,
		Bet:    req.Bet,
		Seed:   req.Seed,
	}

	if req.ConfigYAML != "" {
		var cfg engine.GameConfig
		if err := yaml.Unmarshal([]byte(req.ConfigYAML), &cfg); err != nil {
			return model.PreviewRequest{}, errors.New("invalid config yaml: " + err.Error())
		}
		out.Config = &cfg
	}

	return out, nil
}

func ToSpinResponse(resp model.SpinResult) round.SpinResponse {
	out := round.SpinResponse{
		RoundID:          resp.RoundID,
		Seed:             resp.Seed,
		TotalPayout:      resp.TotalPayout,
		AwardedFreeSpins: resp.AwardedFreeSpins,
		Balance:          resp.Balance,
		FreeSpinCount:    resp.FreeSpinCount,
		InFreeSpin:       resp.InFreeSpin,
	}

	if resp.Round != nil {
		out.Board = toBoard(resp.Round.Grid)
		out.Wins = toWins(resp.Round.Combinations)
		out.CascadeSteps = toCascadeSteps(resp.Round.CascadeSteps)
		out.BetMultiplier = resp.Round.BetMultiplier
		out.CascadeCount = resp.Round.CascadeCount
		out.ScatterCount = resp.Round.ScatterCount
		out.Features = resp.Round.FeaturesTriggered
	}

	return out
}

func ToHistoryItems(rounds []model.Round) []round.HistoryItem {
	result := make([]round.HistoryItem, len(rounds))
	for i, r := range rounds {
		result[i] = round.HistoryItem{
			RoundID:      r.ID,
			GameID:       r.GameID,
			Seed:         r.Seed,
			Bet:          r.Bet,
			Payout:       r.Payout,
			CascadeCount: r.CascadeCount,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}

func ToDataResponse(data model.Data) round.DataResponse {
	return round.DataResponse{
		Balance:       data.Balance,
		FreeSpinCount: data.FreeSpinCount,
	}
}

func toBoard(g engine.Grid) [][]string {
	board := make([][]string, len(g))
	for r := range g {
		board[r] = make([]string, len(g[r]))
		for c, sym := range g[r] {
			board[r][c] = string(sym)
		}
	}
	return board
}

func toWins(combos []engine.WinningCombination) []round.Win {
	result := make([]round.Win, len(combos))
	for i, c := range combos {
		result[i] = round.Win{
			Kind:      string(c.Kind),
			Symbol:    string(c.Symbol),
			Count:     c.Count,
			Payout:    c.Payout,
			Positions: toPositions(c.Positions),
			Line:      c.Line,
			Ways:      c.Ways,
		}
	}
	return result
}

func toPositions(positions []engine.Position) []round.Position {
	result := make([]round.Position, len(positions))
	for i, p := range positions {
		result[i] = round.Position{Row: p.Row, Col: p.Col}
	}
	return result
}

func toCascadeSteps(steps []engine.CascadeStep) []round.CascadeStep {
	if len(steps) == 0 {
		return nil
	}
	result := make([]round.CascadeStep, len(steps))
	for i, s := range steps {
		dropped := make([]round.Drop, len(s.Dropped))
		for j, d := range s.Dropped {
			dropped[j] = round.Drop{Row: d.Row, Col: d.Col, Symbol: string(d.Symbol)}
		}
		result[i] = round.CascadeStep{
			Wins:    toWins(s.Combinations),
			Dropped: dropped,
		}
	}
	return result
}
