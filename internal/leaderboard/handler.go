package leaderboard

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sat-prep/backend/internal/models"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/leaderboard", h.GetLeaderboard).Methods("GET")
	router.HandleFunc("/leaderboard/rank", h.GetUserRank).Methods("GET")
	router.HandleFunc("/leaderboard/topic/{topic}", h.GetTopicLeaderboard).Methods("GET")
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	entries, err := h.store.TopUsers(limit)
	if err != nil {
		log.Println("[leaderboard] query failed:", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load leaderboard"})
		return
	}

	writeJSON(w, http.StatusOK, models.LeaderboardResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func (h *Handler) GetTopicLeaderboard(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	limit := parseLimit(r)

	entries, err := h.store.TopUsersByTopic(topic, limit)
	if err != nil {
		log.Println("[leaderboard] topic query failed:", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load leaderboard"})
		return
	}

	writeJSON(w, http.StatusOK, models.LeaderboardResponse{
		Entries: entries,
		Topic:   topic,
		Total:   len(entries),
	})
}

func (h *Handler) GetUserRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ranking, err := h.store.UserRank(userID)
	if err != nil {
		log.Println("[leaderboard] rank query failed:", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load ranking"})
		return
	}

	writeJSON(w, http.StatusOK, ranking)
}

// parseLimit reads ?limit= and clamps it to [1, maxLimit].
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func getUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("user_id").(int64)
	return userID, ok
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("[leaderboard] failed to encode response:", err)
	}
}
