package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/GoArmGo/AddressBook/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// AddressHandler — обработчик HTTP-запросов для работы с адресами.
type AddressHandler struct {
	addressUseCase usecase.AddressUseCase
	logger         *slog.Logger
}

// NewAddressHandler создаёт новый экземпляр AddressHandler.
func NewAddressHandler(uc usecase.AddressUseCase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{addressUseCase: uc, logger: logger}
}

// addressRequest — тело запроса создания/обновления адреса.
type addressRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Create — создает адрес от имени аутентифицированного пользователя.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithUseCaseError(w, domain.ErrUnauthorized, h.logger)
		return
	}

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed address request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "CreateAddress", "user_id", user.ID)

	address, err := h.addressUseCase.CreateAddress(r.Context(), user, req.X, req.Y)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, address, h.logger)
}

// ListByUser — адреса текущего пользователя.
func (h *AddressHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondWithUseCaseError(w, domain.ErrUnauthorized, h.logger)
		return
	}

	addresses, err := h.addressUseCase.GetAddressesByUser(r.Context(), user.ID)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, addresses, h.logger)
}

// ListAll — все адреса. Эндпоинт исторически открыт без аутентификации.
func (h *AddressHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUseCase.GetAllAddresses(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, addresses, h.logger)
}

// GetDetail — адрес по id.
func (h *AddressHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "address_id")
	if err != nil {
		h.logger.Warn("invalid address_id parameter", "address_id", chi.URLParam(r, "address_id"))
		respondWithError(w, http.StatusBadRequest, "Некорректный address_id", h.logger)
		return
	}

	address, err := h.addressUseCase.GetAddressDetail(r.Context(), id)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, address, h.logger)
}

// GetByCoordinates — адрес по точному совпадению координат.
func (h *AddressHandler) GetByCoordinates(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(chi.URLParam(r, "x"), 64)
	y, errY := strconv.ParseFloat(chi.URLParam(r, "y"), 64)
	if errX != nil || errY != nil {
		h.logger.Warn("invalid coordinates",
			"x", chi.URLParam(r, "x"),
			"y", chi.URLParam(r, "y"),
		)
		respondWithError(w, http.StatusBadRequest, "Некорректные координаты", h.logger)
		return
	}

	address, err := h.addressUseCase.RetrieveAddress(r.Context(), x, y)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, address, h.logger)
}

// Update — замена координат адреса. Владелец намеренно не проверяется,
// маршрут исторически живет под /users/{address_id} (см. DESIGN.md).
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "address_id")
	if err != nil {
		h.logger.Warn("invalid address_id parameter", "address_id", chi.URLParam(r, "address_id"))
		respondWithError(w, http.StatusBadRequest, "Некорректный address_id", h.logger)
		return
	}

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed address request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	address, err := h.addressUseCase.UpdateAddress(r.Context(), id, req.X, req.Y)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, address, h.logger)
}

// Delete — удаление адреса. Владелец намеренно не проверяется.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "address_id")
	if err != nil {
		h.logger.Warn("invalid address_id parameter", "address_id", chi.URLParam(r, "address_id"))
		respondWithError(w, http.StatusBadRequest, "Некорректный address_id", h.logger)
		return
	}

	if err := h.addressUseCase.DeleteAddress(r.Context(), id); err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, "address deleted Successfully", h.logger)
}
