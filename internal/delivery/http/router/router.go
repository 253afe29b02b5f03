// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"datadex/config"
	"datadex/internal/delivery/http/middleware"
	"datadex/internal/delivery/http/router/handler"
	"datadex/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	LedgerHandler   *handler.LedgerHandler
	MarketHandler   *handler.MarketHandler
	OrderHandler    *handler.OrderHandler
	RegistryHandler *handler.RegistryHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	ledgerHandler   *handler.LedgerHandler
	marketHandler   *handler.MarketHandler
	orderHandler    *handler.OrderHandler
	registryHandler *handler.RegistryHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		ledgerHandler:   params.LedgerHandler,
		marketHandler:   params.MarketHandler,
		orderHandler:    params.OrderHandler,
		registryHandler: params.RegistryHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public ledger reads
	ledgerGroup := e.Group("/ledger")
	{
		ledgerGroup.GET("/balance/:address", r.ledgerHandler.GetBalance)
		ledgerGroup.GET("/supply", r.ledgerHandler.GetSupply)
		ledgerGroup.GET("/receipts", r.ledgerHandler.ListReceipts)
		ledgerGroup.GET("/receipts/:id", r.ledgerHandler.GetReceipt)
	}

	// Ledger writes require an authenticated wallet
	ledgerAuthGroup := ledgerGroup.Group("")
	ledgerAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		ledgerAuthGroup.POST("/transfer", r.ledgerHandler.Transfer)
		ledgerAuthGroup.POST("/transfer-notify", r.ledgerHandler.TransferWithNotify)
		ledgerAuthGroup.POST("/burn", r.ledgerHandler.Burn)
	}

	// Marketplace reads are public; item management requires the owner
	marketGroup := e.Group("/market")
	{
		marketGroup.GET("/items/:store/:version", r.marketHandler.GetItem)
		marketGroup.GET("/items/:store/:version/price", r.marketHandler.GetPrice)
		marketGroup.GET("/items/:store/:version/sale", r.marketHandler.GetSale)
		marketGroup.GET("/items/:store/:version/qr", r.marketHandler.GetPaymentQR)
		marketGroup.GET("/purchases/:address/:store/:version", r.marketHandler.GetPurchaseStatus)
		marketGroup.GET("/sellers/:owner/balance", r.marketHandler.GetSellerBalance)
	}

	marketAuthGroup := marketGroup.Group("")
	marketAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		marketAuthGroup.POST("/items/:store/:version/price", r.marketHandler.SetPrice)
		marketAuthGroup.POST("/items/:store/:version/sale", r.marketHandler.SetSale)
		marketAuthGroup.POST("/items/:store/:version/oracle", r.marketHandler.SetOraclePricing)
		marketAuthGroup.POST("/withdraw", r.marketHandler.Withdraw)
	}

	// Order baskets
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/price", r.orderHandler.GetOrderPrice)
		orderGroup.GET("/:id/qr", r.orderHandler.GetPaymentQR)
	}

	orderAuthGroup := orderGroup.Group("")
	orderAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		orderAuthGroup.POST("", r.orderHandler.CreateOrder)
		orderAuthGroup.GET("/active", r.orderHandler.GetActiveOrder)
		orderAuthGroup.POST("/:id/items", r.orderHandler.AddItems)
		orderAuthGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Public registry reads
	registryGroup := e.Group("/registry")
	{
		registryGroup.GET("/percentages/:slot", r.registryHandler.GetPercentage)
		registryGroup.GET("/rate", r.registryHandler.GetRate)
		registryGroup.GET("/stores/:address", r.registryHandler.GetStore)
	}

	// Administrative routes. Mint and bridge-mint admit approved minters
	// too, so they sit behind Authenticate only and the use case decides.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/mint", r.ledgerHandler.Mint)
		adminGroup.POST("/bridge-mint", r.ledgerHandler.BridgeMint)
		adminGroup.POST("/mint-pause", r.ledgerHandler.SetMintPause)
	}

	adminOnlyGroup := adminGroup.Group("")
	adminOnlyGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminOnlyGroup.POST("/minters", r.ledgerHandler.AddMinter)
		adminOnlyGroup.POST("/percentages", r.registryHandler.SetPercentage)
		adminOnlyGroup.POST("/rate", r.registryHandler.SetRate)
		adminOnlyGroup.POST("/stores", r.registryHandler.RegisterStore)
		adminOnlyGroup.POST("/orders/withdraw", r.orderHandler.Withdraw)
	}

	// Test-only routes for local development
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/token", r.testHandler.IssueToken)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
