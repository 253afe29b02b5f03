// Package handler contains the HTTP handlers for the settlement engine.
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
	"github.com/shopspring/decimal"
)

// LedgerHandler holds dependencies for ledger-related handlers.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{uc: uc, logger: logger}
}

// TransferRequest is the payload of a plain transfer.
type TransferRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// Transfer handles a plain value transfer between accounts.
func (h *LedgerHandler) Transfer(c echo.Context) error {
	var input TransferRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	if err := h.uc.Transfer(c.Request().Context(), callerFrom(c), entity.NormalizeAddress(input.To), amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transfer completed")
}

// TransferWithNotifyRequest is the payload of a notified transfer.
type TransferWithNotifyRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Reference string `json:"reference" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// TransferWithNotify handles a payment to a settlement component.
func (h *LedgerHandler) TransferWithNotify(c echo.Context) error {
	var input TransferWithNotifyRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	receipt, err := h.uc.TransferWithNotify(c.Request().Context(), callerFrom(c), entity.NormalizeAddress(input.Recipient), input.Reference, amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt, "Settlement completed")
}

// BurnRequest is the payload of a burn toward the bridge.
type BurnRequest struct {
	Amount     string `json:"amount" validate:"required"`
	Annotation string `json:"annotation"`
}

// Burn handles removing value pending re-mint on the mirror network.
func (h *LedgerHandler) Burn(c echo.Context) error {
	var input BurnRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	burn, err := h.uc.Burn(c.Request().Context(), callerFrom(c), amount, input.Annotation)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, burn, "Burn recorded")
}

// MintRequest is the payload of a mint.
type MintRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// Mint handles crediting newly created value.
func (h *LedgerHandler) Mint(c echo.Context) error {
	var input MintRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	if err := h.uc.Mint(c.Request().Context(), callerFrom(c), entity.NormalizeAddress(input.To), amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mint completed")
}

// BridgeMintRequest is the payload of a bridge re-mint.
type BridgeMintRequest struct {
	RequestID  uint64 `json:"request_id" validate:"required"`
	Burner     string `json:"burner" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	DetailHash string `json:"detail_hash" validate:"required"`
	NetworkID  int64  `json:"network_id" validate:"required"`
}

// BridgeMint handles finalizing a burn on this network.
func (h *LedgerHandler) BridgeMint(c echo.Context) error {
	var input BridgeMintRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	err = h.uc.BridgeMint(c.Request().Context(), callerFrom(c), input.RequestID, entity.NormalizeAddress(input.Burner), amount, input.DetailHash, input.NetworkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Bridge mint completed")
}

// MintPauseRequest is the payload of a mint-pause toggle.
type MintPauseRequest struct {
	Paused bool `json:"paused"`
}

// SetMintPause handles toggling the global mint pause.
func (h *LedgerHandler) SetMintPause(c echo.Context) error {
	var input MintPauseRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.SetMintPause(c.Request().Context(), callerFrom(c), input.Paused); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mint pause updated")
}

// AddMinterRequest is the payload to approve a minter.
type AddMinterRequest struct {
	Address string `json:"address" validate:"required"`
}

// AddMinter handles approving an address to mint.
func (h *LedgerHandler) AddMinter(c echo.Context) error {
	var input AddMinterRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.AddMinter(c.Request().Context(), callerFrom(c), entity.NormalizeAddress(input.Address)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Minter approved")
}

// GetBalance returns the balance of an account.
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	addr := entity.NormalizeAddress(c.Param("address"))

	balance, err := h.uc.Balance(c.Request().Context(), addr)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"address": addr.String(),
		"balance": balance.String(),
	}, "")
}

// GetSupply returns the total supply.
func (h *LedgerHandler) GetSupply(c echo.Context) error {
	supply, err := h.uc.TotalSupply(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"total_supply": supply.String()}, "")
}

// GetReceipt returns one receipt from the audit trail.
func (h *LedgerHandler) GetReceipt(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Receipt id must be numeric")
	}

	receipt, err := h.uc.GetReceipt(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt, "")
}

// ListReceipts pages through the audit trail.
func (h *LedgerHandler) ListReceipts(c echo.Context) error {
	var afterID uint64
	if after := c.QueryParam("after"); after != "" {
		parsed, err := strconv.ParseUint(after, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_CURSOR", "Cursor must be numeric")
		}
		afterID = parsed
	}

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be numeric")
		}
		limit = parsed
	}

	receipts, err := h.uc.ListReceipts(c.Request().Context(), afterID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
