package converter

import (
	"slotforge_backend/internal/api/dto/sim"
	"slotforge_backend/internal/model"
)

func ToSimRun(req sim.RunRequest) model.SimRequest {
	return model.SimRequest{
		GameID:   req.GameID,
		Rounds:   req.Rounds,
		Workers:  req.Workers,
		Bet:      req.Bet,
		BaseSeed: req.BaseSeed,
	}
}

func ToSimRunResponse(resp model.SimReport) sim.RunResponse {
	return sim.RunResponse{
		GameID:      resp.GameID,
		Rounds:      resp.Rounds,
		Bet:         resp.Bet,
		BaseSeed:    resp.BaseSeed,
		TotalBet:    resp.TotalBet,
		TotalPayout: resp.TotalPayout,
		RTP:         resp.RTP,
		HitRate:     resp.HitRate,
		Variance:    resp.Variance,
		AvgCascades: resp.AvgCascades,
		MaxPayout:   resp.MaxPayout,
		ElapsedMS:   resp.Elapsed.Milliseconds(),
	}
}

func ToSimStatsResponse(snap model.SimSnapshot) sim.StatsResponse {
	return sim.StatsResponse{
		TotalSpins:  snap.TotalSpins,
		TotalBet:    snap.TotalBet,
		TotalPayout: snap.TotalPayout,
		RTP:         snap.RTP,
	}
}
