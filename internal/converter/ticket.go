package converter

import (
	"slotforge_backend/internal/api/dto/ticket"
	"slotforge_backend/internal/model"
)

func ToTicketPlay(req ticket.PlayRequest) model.TicketRequest {
	return model.TicketRequest{
		GameID:     req.GameID,
		Bet:        req.Bet,
		ClientSeed: req.ClientSeed,
	}
}

func ToTicketPlayResponse(resp model.TicketResult) ticket.PlayResponse {
	out := ticket.PlayResponse{
		RoundID:     resp.RoundID,
		Seed:        resp.Seed,
		TotalPayout: resp.TotalPayout,
		Balance:     resp.Balance,
	}

	if resp.Ticket != nil {
		out.TierID = resp.Ticket.TierID
		out.Win = resp.Ticket.Win
		out.Reveal = toBoard(resp.Ticket.Reveal)
		out.WinPositions = toPositions(resp.Ticket.WinPositions)
		out.Multiplier = resp.Ticket.Multiplier
		out.BetMultiplier = resp.Ticket.BetMultiplier
	}

	return out
}
