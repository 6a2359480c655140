package quiz

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	dto "quiz_backend/internal/api/dto/quiz"
	"quiz_backend/internal/converter"
	"quiz_backend/internal/middleware"
	"quiz_backend/internal/service"
	"quiz_backend/pkg/req"
	"quiz_backend/pkg/resp"
	"strconv"
)

const defaultWorksheetProblems = 20

type HandlerDeps struct {
	Serv        service.QuizService
	TargetScore int
}

type Handler struct {
	serv        service.QuizService
	targetScore int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, targetScore: deps.TargetScore}
}

// Start открывает новую сессию и возвращает токен вместе с первым экраном
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.Start(r.Context())
	if err != nil {
		writeServiceError(w, "start", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSessionResponse(*state, h.targetScore))
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Session(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, "session", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*state, h.targetScore))
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.AnswerRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Answer == nil {
		http.Error(w, "answer is required", http.StatusBadRequest)
		return
	}

	state, err := h.serv.Answer(r.Context(), sessionID, *payload.Answer)
	if err != nil {
		writeServiceError(w, "answer", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*state, h.targetScore))
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Restart(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, "restart", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*state, h.targetScore))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.serv.Leaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, "leaderboard", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(results))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// Worksheet отдаёт PDF с задачами для печати. Документ собирается целиком
// до записи заголовков, чтобы ошибка не оборвала ответ на середине
func (h *Handler) Worksheet(w http.ResponseWriter, r *http.Request) {
	problems, err := intQuery(r, "problems", defaultWorksheetProblems)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.serv.Worksheet(r.Context(), problems, &buf); err != nil {
		writeServiceError(w, "worksheet", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="worksheet.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("worksheet write error: %v", err)
	}
}

func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrSessionOver), errors.Is(err, service.ErrSessionActive):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUnknownOption), errors.Is(err, service.ErrInvalidLimit):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("%s error: %v", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
