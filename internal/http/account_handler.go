package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accounts *service.AccountService
	logger   *zap.Logger
}

func NewAccountHandler(accounts *service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	userID, err := h.accounts.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		respondMessage(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, registerResponse{
		Message: "Registered successfully",
		UserID:  userID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// One message for unknown email and wrong password alike.
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    user,
	})
}
