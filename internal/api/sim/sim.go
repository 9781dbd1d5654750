package sim

import (
	"net/http"

	dto "slotforge_backend/internal/api/dto/sim"
	"slotforge_backend/internal/converter"
	"slotforge_backend/internal/service"
	"slotforge_backend/pkg/req"
	"slotforge_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SimService
}

type Handler struct {
	serv service.SimService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Run — пакетный прогон резолвера для проверки RTP. Может работать долго,
// отмена — через разрыв соединения (контекст запроса)
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.serv.Run(r.Context(), converter.ToSimRun(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSimRunResponse(*report))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSimStatsResponse(h.serv.Stats()))
}
