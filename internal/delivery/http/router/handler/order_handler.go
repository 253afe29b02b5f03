package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"datadex/config"
	"datadex/internal/delivery/http/response"
	"datadex/internal/domain/entity"
	"datadex/internal/domain/service"
	"datadex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc        usecase.OrderUsecase
	qrService service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, qrService service.QRCodeService, cfg *config.Config, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, qrService: qrService, cfg: cfg, logger: logger}
}

// orderIDFrom parses the numeric order id path parameter.
func orderIDFrom(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.BadRequest(c, "INVALID_ID", "Order id must be numeric")
	}

	return id, nil
}

// parseItemKeys converts "store:version" strings into item keys.
func parseItemKeys(c echo.Context, raw []string) ([]entity.ItemKey, error) {
	keys := make([]entity.ItemKey, 0, len(raw))
	for _, s := range raw {
		key, err := entity.ParseItemKey(s)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_ITEM_KEY", "Item keys must look like store:version")
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// CreateOrderRequest optionally pre-populates the new basket.
type CreateOrderRequest struct {
	Items []string `json:"items"`
}

// CreateOrder opens a new ACTIVE order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input CreateOrderRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	keys, err := parseItemKeys(c, input.Items)
	if err != nil {
		return err
	}

	order, err := h.uc.CreateAndAddOrder(c.Request().Context(), callerFrom(c), keys)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// AddItemsRequest appends keys to an existing basket.
type AddItemsRequest struct {
	Items []string `json:"items" validate:"required,min=1"`
}

// AddItems appends items to the caller's ACTIVE order.
func (h *OrderHandler) AddItems(c echo.Context) error {
	id, err := orderIDFrom(c)
	if err != nil {
		return err
	}

	var input AddItemsRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	keys, err := parseItemKeys(c, input.Items)
	if err != nil {
		return err
	}

	order, err := h.uc.AddItems(c.Request().Context(), callerFrom(c), id, keys)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Items added")
}

// CancelOrder cancels the caller's ACTIVE order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := orderIDFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.CancelOrder(c.Request().Context(), callerFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order cancelled")
}

// GetOrder returns an order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := orderIDFrom(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetActiveOrder returns the caller's current ACTIVE order.
func (h *OrderHandler) GetActiveOrder(c echo.Context) error {
	order, err := h.uc.ActiveOrder(c.Request().Context(), callerFrom(c).Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetOrderPrice returns the basket's live total.
func (h *OrderHandler) GetOrderPrice(c echo.Context) error {
	id, err := orderIDFrom(c)
	if err != nil {
		return err
	}

	total, err := h.uc.GetPrice(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"order_id": strconv.FormatUint(id, 10),
		"total":    total.String(),
	}, "")
}

// GetPaymentQR renders a QR a wallet scans to pay for the basket.
func (h *OrderHandler) GetPaymentQR(c echo.Context) error {
	id, err := orderIDFrom(c)
	if err != nil {
		return err
	}

	total, err := h.uc.GetPrice(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrService.GeneratePaymentQR(h.cfg.Settlement.OrdersAddress, strconv.FormatUint(id, 10), total)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AggregatorWithdrawRequest pays out aggregator surplus.
type AggregatorWithdrawRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// Withdraw pays out overpayment surplus held by the aggregator account.
func (h *OrderHandler) Withdraw(c echo.Context) error {
	var input AggregatorWithdrawRequest
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
