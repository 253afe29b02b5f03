package handler

import (
	"log/slog"
	"net/http"

	"datadex/config"
	"datadex/internal/delivery/http/response"
	"datadex/internal/domain/entity"
	"datadex/internal/domain/service"
	"datadex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MarketHandler holds dependencies for marketplace-related handlers.
type MarketHandler struct {
	uc        usecase.MarketUsecase
	qrService service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase, qrService service.QRCodeService, cfg *config.Config, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{uc: uc, qrService: qrService, cfg: cfg, logger: logger}
}

// itemKeyFrom builds the item key from the path parameters.
func itemKeyFrom(c echo.Context) entity.ItemKey {
	return entity.NewItemKey(entity.Address(c.Param("store")), c.Param("version"))
}

// SetPriceRequest is the payload to price an item.
type SetPriceRequest struct {
	Price string `json:"price" validate:"required"`
}

// SetPrice handles pricing an item.
func (h *MarketHandler) SetPrice(c echo.Context) error {
	var input SetPriceRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "Price must be a decimal string")
	}

	if err := h.uc.SetPrice(c.Request().Context(), callerFrom(c), itemKeyFrom(c), price); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Price updated")
}

// SetSaleRequest is the payload to toggle the sale flag.
type SetSaleRequest struct {
	OnSale bool `json:"on_sale"`
}

// SetSale handles toggling the item's sale flag.
func (h *MarketHandler) SetSale(c echo.Context) error {
	var input SetSaleRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.SetSale(c.Request().Context(), callerFrom(c), itemKeyFrom(c), input.OnSale); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale flag updated")
}

// SetOraclePricingRequest is the payload to opt into oracle pricing.
type SetOraclePricingRequest struct {
	Enabled bool `json:"enabled"`
}

// SetOraclePricing handles opting an item into exchange-rate pricing.
func (h *MarketHandler) SetOraclePricing(c echo.Context) error {
	var input SetOraclePricingRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.SetOraclePricing(c.Request().Context(), callerFrom(c), itemKeyFrom(c), input.Enabled); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Oracle pricing updated")
}

// GetItem returns the stored item.
func (h *MarketHandler) GetItem(c echo.Context) error {
	item, err := h.uc.GetItem(c.Request().Context(), itemKeyFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// GetPrice returns the item's effective price.
func (h *MarketHandler) GetPrice(c echo.Context) error {
	key := itemKeyFrom(c)

	price, err := h.uc.GetPrice(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"item":  key.String(),
		"price": price.String(),
	}, "")
}

// GetSale reports whether the item is for sale.
func (h *MarketHandler) GetSale(c echo.Context) error {
	key := itemKeyFrom(c)

	onSale, err := h.uc.IsSale(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"item":    key.String(),
		"on_sale": onSale,
	}, "")
}

// GetPurchaseStatus reports whether an address holds purchase rights.
func (h *MarketHandler) GetPurchaseStatus(c echo.Context) error {
	key := itemKeyFrom(c)
	addr := entity.NormalizeAddress(c.Param("address"))

	purchased, err := h.uc.GetPurchaseStatus(c.Request().Context(), addr, key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"item":      key.String(),
		"address":   addr.String(),
		"purchased": purchased,
	}, "")
}

// GetSellerBalance returns the owner's accrued proceeds.
func (h *MarketHandler) GetSellerBalance(c echo.Context) error {
	owner := entity.NormalizeAddress(c.Param("owner"))

	balance, err := h.uc.SellerBalance(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"owner":   owner.String(),
		"balance": balance.String(),
	}, "")
}

// WithdrawRequest is the payload of a seller withdrawal.
type WithdrawRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// Withdraw handles paying out accrued seller proceeds.
func (h *MarketHandler) Withdraw(c echo.Context) error {
	var input WithdrawRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "Amount must be a decimal string")
	}

	if err := h.uc.Withdraw(c.Request().Context(), callerFrom(c), entity.NormalizeAddress(input.To), amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Withdrawal completed")
}

// GetPaymentQR renders a QR a wallet scans to pay for the item.
func (h *MarketHandler) GetPaymentQR(c echo.Context) error {
	key := itemKeyFrom(c)

	price, err := h.uc.GetPrice(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrService.GeneratePaymentQR(h.cfg.Settlement.MarketAddress, key.String(), price)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
