package handler

import (
	"net/http"

	"datadex/internal/delivery/http/response"
	"datadex/internal/domain/entity"
	"datadex/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles test endpoints for local development. The routes are
// registered only when testRoutes.enabled is set.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest mints an access token for an arbitrary address.
type IssueTokenRequest struct {
	Address string   `json:"address" validate:"required"`
	Roles   []string `json:"roles"`
}

// IssueToken issues a signed access token so local clients can exercise
// authenticated routes without a wallet.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var input IssueTokenRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	token, err := h.tokenSvc.GenerateToken(entity.NormalizeAddress(input.Address), input.Roles)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": token}, "Token issued")
}

// TestAuthMiddleware echoes the authenticated caller back.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	caller := callerFrom(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"address": caller.Address.String(),
		"roles":   caller.Roles,
		"status":  "authenticated",
	}, "Authentication middleware test successful")
}
