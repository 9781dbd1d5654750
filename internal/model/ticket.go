package model

import "slotforge_backend/internal/engine"

// TicketRequest — покупка скретч-билета
type TicketRequest struct {
	GameID     string
	Bet        int
	ClientSeed string
}

// TicketResult — итог тикетного раунда
type TicketResult struct {
	RoundID string
	Seed    string

	Ticket *engine.TicketResult

	TotalPayout int
	Balance     int
}
