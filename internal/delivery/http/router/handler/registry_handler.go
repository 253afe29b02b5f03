package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"datadex/internal/delivery/http/response"
	"datadex/internal/domain/entity"
	"datadex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistryHandler holds dependencies for registry-related handlers.
type RegistryHandler struct {
	uc     usecase.RegistryUsecase
	logger *slog.Logger
}

// NewRegistryHandler is the constructor for RegistryHandler, injected by Fx.
func NewRegistryHandler(uc usecase.RegistryUsecase, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{uc: uc, logger: logger}
}

// SetPercentageRequest updates one revenue-split slot.
type SetPercentageRequest struct {
	Slot  int `json:"slot"`
	Value int `json:"value"`
}

// SetPercentage handles updating a revenue-split slot.
func (h *RegistryHandler) SetPercentage(c echo.Context) error {
	var input SetPercentageRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.SetPercentage(c.Request().Context(), callerFrom(c), input.Slot, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Percentage updated")
}

// GetPercentage returns the percentage for a slot.
func (h *RegistryHandler) GetPercentage(c echo.Context) error {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SLOT", "Slot must be numeric")
	}

	value, err := h.uc.GetPercentage(c.Request().Context(), slot)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"slot":  slot,
		"value": value,
	}, "")
}

// SetRateRequest updates the exchange rate.
type SetRateRequest struct {
	Rate int64 `json:"rate" validate:"required"`
}

// SetRate handles updating the exchange rate.
func (h *RegistryHandler) SetRate(c echo.Context) error {
	var input SetRateRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.SetRate(c.Request().Context(), callerFrom(c), input.Rate); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rate updated")
}

// GetRate returns the current exchange rate.
func (h *RegistryHandler) GetRate(c echo.Context) error {
	rate, err := h.uc.GetRate(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"rate": rate}, "")
}

// RegisterStoreRequest registers a store with the marketplace.
type RegisterStoreRequest struct {
	Address  string `json:"address" validate:"required"`
	Owner    string `json:"owner" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// RegisterStore handles registering a store.
func (h *RegistryHandler) RegisterStore(c echo.Context) error {
	var input RegisterStoreRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	store := &entity.Store{
		Address:  entity.NormalizeAddress(input.Address),
		Owner:    entity.NormalizeAddress(input.Owner),
		Location: entity.NormalizeAddress(input.Location),
	}

	if err := h.uc.RegisterStore(c.Request().Context(), callerFrom(c), store); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store registered")
}

// GetStore returns a registered store.
func (h *RegistryHandler) GetStore(c echo.Context) error {
	store, err := h.uc.GetStore(c.Request().Context(), entity.NormalizeAddress(c.Param("address")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}
