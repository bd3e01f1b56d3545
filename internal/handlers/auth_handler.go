package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	repo   InterviewerStore
	logger *zap.Logger
}

func NewAuthHandler(repo InterviewerStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{repo: repo, logger: logger}
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON in request body")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "full_name, email and password are required")
		return
	}
	if !utils.IsEmailValid(req.Email) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_email", "Invalid email address")
		return
	}
	if !utils.IsPasswordValid(req.Password) {
		utils.JSONError(w, http.StatusBadRequest, "weak_password", "Password must be at least 8 characters with a special character")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "hash_error", "Failed to hash password")
		return
	}

	interviewer := &models.Interviewer{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.repo.Create(r.Context(), interviewer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			utils.JSONError(w, http.StatusConflict, "email_taken", "Email already registered")
			return
		}
		h.logger.Error("Failed to create interviewer", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "create_error", "Failed to create account")
		return
	}

	utils.JSON(w, http.StatusCreated, interviewer)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON in request body")
		return
	}

	interviewer, err := h.repo.ByEmail(r.Context(), req.Email)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(interviewer.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := utils.GenerateAuthToken(interviewer.ID, interviewer.Email)
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "token_error", "Failed to sign token")
		return
	}

	utils.JSON(w, http.StatusOK, authResponse{Token: token})
}

// MeHandler returns the authenticated interviewer's profile.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	interviewer, err := h.repo.ByID(r.Context(), middleware.InterviewerID(r))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Account not found")
		return
	}
	utils.JSON(w, http.StatusOK, interviewer)
}
