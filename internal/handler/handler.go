package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/GoArmGo/AddressBook/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// UserHandler — обработчик HTTP-запросов регистрации, входа и просмотра пользователей.
type UserHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.AuthUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{authUseCase: uc, logger: logger}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithUseCaseError — отображает сентинельные ошибки бизнес-логики
// в HTTP-статусы; все незнакомые ошибки уходят как 500 с нейтральным текстом.
func respondWithUseCaseError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrInvalidEmail):
		respondWithError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, domain.ErrInvalidCredentials) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrInvalidToken):
		respondWithError(w, http.StatusUnauthorized, err.Error(), logger)
	case errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrAddressNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), logger)
	default:
		logger.Error("unexpected error while handling request", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error", logger)
	}
}

// parseUintParam — достает числовой URL-параметр chi.
func parseUintParam(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// registerRequest — тело запроса регистрации.
type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Register — регистрирует пользователя и возвращает bearer-токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed register request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "Register", "email", req.Email)

	token, err := h.authUseCase.Register(r.Context(), req.Email, req.Name, req.Phone, req.Password)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, token, h.logger)
}

// Login — принимает form-encoded username/password и возвращает bearer-токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed login form", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректная форма запроса", h.logger)
		return
	}

	// поле называется username, но содержит email — контракт OAuth2-формы
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	h.logger.Info("processing request", "endpoint", "Login", "email", email)

	token, err := h.authUseCase.Login(r.Context(), email, password)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, token, h.logger)
}

// CurrentUser — возвращает пользователя, которому принадлежит токен.
// Сам пользователь уже разрешен auth-middleware и лежит в контексте.
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithUseCaseError(w, domain.ErrUnauthorized, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// GetUserDetail — публичный просмотр пользователя по id.
func (h *UserHandler) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "user_id")
	if err != nil {
		h.logger.Warn("invalid user_id parameter", "user_id", chi.URLParam(r, "user_id"))
		respondWithError(w, http.StatusBadRequest, "Некорректный user_id", h.logger)
		return
	}

	user, err := h.authUseCase.UserDetail(r.Context(), id)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}
