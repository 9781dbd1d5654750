package ticket

import (
	"errors"
	"net/http"

	dto "slotforge_backend/internal/api/dto/ticket"
	"slotforge_backend/internal/converter"
	"slotforge_backend/internal/service"
	ticketServ "slotforge_backend/internal/service/ticket"
	"slotforge_backend/pkg/req"
	"slotforge_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TicketService
}

type Handler struct {
	serv service.TicketService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToTicketPlay(payload))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTicketPlayResponse(*result))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ticketServ.ErrInvalidBet), errors.Is(err, ticketServ.ErrUnknownTicket):
		return http.StatusBadRequest
	case errors.Is(err, ticketServ.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
