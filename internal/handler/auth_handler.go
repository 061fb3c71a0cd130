package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frenzyhq/frenzy-backend/internal/apperror"
	"github.com/frenzyhq/frenzy-backend/internal/model"
	"github.com/frenzyhq/frenzy-backend/internal/service"
	"github.com/frenzyhq/frenzy-backend/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	responder   *apperror.Responder
}

func NewAuthHandler(authService *service.AuthService, responder *apperror.Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		responder:   responder,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		h.responder.Write(w, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.responder.Write(w, apperror.Conflict("User already exists"))
			return
		}
		h.responder.Write(w, apperror.Internal(err))
		return
	}

	writeAuthResponse(w, http.StatusCreated, "User registered successfully", token, user)
}

// Login handles user authentication and returns a fresh session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		h.responder.Write(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.responder.Write(w, apperror.Unauthorized("Invalid credentials"))
			return
		}
		h.responder.Write(w, apperror.Internal(err))
		return
	}

	writeAuthResponse(w, http.StatusOK, "Login successful", token, user)
}

func decodeCredentials(r *http.Request) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apperror.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return &req, nil
}

func writeAuthResponse(w http.ResponseWriter, status int, message, token string, user *model.User) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authResponse{
		Message: message,
		Token:   token,
		User:    userResponse{ID: user.ID, Email: user.Email},
	})
}
