package adaptive

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sat-prep/backend/internal/generator"
	"github.com/sat-prep/backend/internal/models"
)

type Handler struct {
	service   *Service
	generator *generator.Generator
}

func NewHandler(service *Service, gen *generator.Generator) *Handler {
	return &Handler{service: service, generator: gen}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/ability", h.GetAbility).Methods("GET")
	protected.HandleFunc("/recommendation", h.GetRecommendation).Methods("GET")
	protected.HandleFunc("/questions/adaptive", h.GetAdaptiveQuestion).Methods("GET")
	protected.HandleFunc("/questions/{questionID}/difficulty", h.GetQuestionDifficulty).Methods("GET")
}

func (h *Handler) GetAbility(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	report, err := h.service.GetUserAbility(userID)
	if err != nil {
		log.Printf("[adaptive] GetAbility error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to estimate ability"})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required"})
		return
	}
	challengeMode := r.URL.Query().Get("challenge_mode") == "true"

	rec, err := h.service.RecommendDifficulty(userID, topic, challengeMode)
	if err != nil {
		log.Printf("[adaptive] GetRecommendation error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to recommend difficulty"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) GetQuestionDifficulty(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionID"]
	if questionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question ID is required"})
		return
	}

	resp, err := h.service.GetQuestionDifficulty(questionID)
	if err != nil {
		log.Printf("[adaptive] GetQuestionDifficulty error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to estimate question difficulty"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetAdaptiveQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required"})
		return
	}
	challengeMode := r.URL.Query().Get("challenge_mode") == "true"

	rec, err := h.service.RecommendDifficulty(userID, topic, challengeMode)
	if err != nil {
		log.Printf("[adaptive] GetAdaptiveQuestion recommendation error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to recommend difficulty"})
		return
	}

	question, err := h.generator.GenerateQuestion(r.Context(), topic, rec.DifficultyLevel)
	if err != nil {
		log.Printf("[adaptive] GetAdaptiveQuestion generation error: %v", err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Failed to generate question"})
		return
	}

	writeJSON(w, http.StatusOK, models.AdaptiveQuestionResponse{
		Topic:                 topic,
		RecommendedDifficulty: rec.DifficultyLevel,
		UserAbility:           rec.EstimatedAbility,
		ChallengeMode:         challengeMode,
		Question:              *question,
	})
}

func getUserID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value("user_id").(int64)
	return id, ok
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
