package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"datadex/config"
	"datadex/internal/domain/entity"
	domainerrors "datadex/internal/domain/errors"
	"datadex/internal/domain/repository"
	"datadex/internal/domain/service"
	mockRepo "datadex/internal/mocks/repository"
	mockSvc "datadex/internal/mocks/service"
	"datadex/internal/usecase"
)

type orderServiceFixtures struct {
	orderRepo *mockRepo.MockOrderRepository
	txManager *mockRepo.MockTransactionManager
	settler   *mockSvc.MockItemSettler
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceFixtures) {
	t.Helper()

	fx := &orderServiceFixtures{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		settler:   mockSvc.NewMockItemSettler(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: fx.orderRepo,
		TxManager: fx.txManager,
		Settler:   fx.settler,
		Publisher: fx.publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			Settlement: &config.SettlementConfig{
				MarketAddress: "market",
				OrdersAddress: "orders",
			},
		},
	})

	return svc, fx
}

func TestOrderService_CreateOrder_RejectsSecondActive(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("buyer")

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindActiveOrderByOwner(ctx, owner).
		Return(&entity.Order{ID: 3, Owner: owner, Status: entity.OrderStatusActive}, nil)

	_, err := svc.CreateOrder(ctx, usecase.Caller{Address: owner})

	assert.ErrorIs(t, err, domainerrors.ErrActiveOrderExists)
}

func TestOrderService_CreateAndAddOrder_Succeeds(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("buyer")
	key1 := entity.NewItemKey("store-1", "v1")
	key2 := entity.NewItemKey("store-2", "v1")

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindActiveOrderByOwner(ctx, owner).Return(nil, repository.ErrOrderNotFound)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = 11
		}).
		Return(nil)
	fx.orderRepo.EXPECT().AppendItem(ctx, uint64(11), key1, 0).Return(nil)
	fx.orderRepo.EXPECT().AppendItem(ctx, uint64(11), key2, 1).Return(nil)

	// One created event plus one per appended key.
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil).Times(3)

	order, err := svc.CreateAndAddOrder(ctx, usecase.Caller{Address: owner}, []entity.ItemKey{key1, key2})

	require.NoError(t, err)
	assert.Equal(t, uint64(11), order.ID)
	assert.Equal(t, entity.OrderStatusActive, order.Status)
	assert.Equal(t, []entity.ItemKey{key1, key2}, order.Items)
}

func TestOrderService_AddItems_DuplicateIsSoftSkip(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("buyer")
	key1 := entity.NewItemKey("store-1", "v1")
	key2 := entity.NewItemKey("store-2", "v1")

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(11)).
		Return(&entity.Order{
			ID:     11,
			Owner:  owner,
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1},
		}, nil)

	// Only the new key hits the repository; the duplicate is reported, not failed.
	fx.orderRepo.EXPECT().AppendItem(ctx, uint64(11), key2, 1).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil).Times(2)

	order, err := svc.AddItems(ctx, usecase.Caller{Address: owner}, 11, []entity.ItemKey{key1, key2})

	require.NoError(t, err)
	assert.Equal(t, []entity.ItemKey{key1, key2}, order.Items)
}

func TestOrderService_AddItems_OnlyOwner(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(11)).
		Return(&entity.Order{ID: 11, Owner: entity.NormalizeAddress("buyer"), Status: entity.OrderStatusActive}, nil)

	_, err := svc.AddItems(ctx,
		usecase.Caller{Address: entity.NormalizeAddress("stranger")},
		11,
		[]entity.ItemKey{entity.NewItemKey("store-1", "v1")},
	)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestOrderService_CancelOrder_Succeeds(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("buyer")

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(11)).
		Return(&entity.Order{ID: 11, Owner: owner, Status: entity.OrderStatusActive}, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, uint64(11), entity.OrderStatusCancelled).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.CancelOrder(ctx, usecase.Caller{Address: owner}, 11)

	require.NoError(t, err)
}

func TestOrderService_CancelOrder_TerminalOrderRejected(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("buyer")

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(11)).
		Return(&entity.Order{ID: 11, Owner: owner, Status: entity.OrderStatusPurchased}, nil)

	err := svc.CancelOrder(ctx, usecase.Caller{Address: owner}, 11)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotActive)
}

func TestOrderService_Settle_FansOutBasket(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	ordersAddr := entity.NormalizeAddress("orders")
	marketAddr := entity.NormalizeAddress("market")
	key1 := entity.NewItemKey("store-1", "v1")
	key2 := entity.NewItemKey("store-2", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{
			ID:     5,
			Owner:  buyer,
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1, key2},
		}, nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key1).Return(decimal.NewFromInt(10), nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key2).Return(decimal.NewFromInt(20), nil)

	// Terminal status lands before any funds fan out.
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, uint64(5), entity.OrderStatusPurchased).Return(nil)

	accounts.EXPECT().Debit(ctx, ordersAddr, decimal.NewFromInt(10)).Return(nil)
	accounts.EXPECT().Credit(ctx, marketAddr, decimal.NewFromInt(10)).Return(nil)
	fx.settler.EXPECT().SettleItem(ctx, mock.Anything, buyer, key1, decimal.NewFromInt(10)).
		Return(&service.ItemSettlement{Key: key1, Buyer: buyer, Price: decimal.NewFromInt(10)}, nil)
	accounts.EXPECT().Debit(ctx, ordersAddr, decimal.NewFromInt(20)).Return(nil)
	accounts.EXPECT().Credit(ctx, marketAddr, decimal.NewFromInt(20)).Return(nil)
	fx.settler.EXPECT().SettleItem(ctx, mock.Anything, buyer, key2, decimal.NewFromInt(20)).
		Return(&service.ItemSettlement{Key: key2, Buyer: buyer, Price: decimal.NewFromInt(20)}, nil)

	// Overpayment above the basket total settles fine; the surplus stays
	// with the aggregator account.
	events, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(35))

	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestOrderService_Settle_BelowTotalRejected(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key1 := entity.NewItemKey("store-1", "v1")

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{
			ID:     5,
			Owner:  buyer,
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1},
		}, nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key1).Return(decimal.NewFromInt(10), nil)

	_, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(9))

	assert.ErrorIs(t, err, domainerrors.ErrPriceMismatch)
}

func TestOrderService_Settle_ForeignOrderLooksMissing(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{ID: 5, Owner: entity.NormalizeAddress("buyer"), Status: entity.OrderStatusActive}, nil)

	// A stranger paying for someone else's order gets the same answer as
	// for an order that does not exist.
	_, err := target.Settle(ctx, factory, entity.NormalizeAddress("stranger"), "5", decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Settle_TerminalOrderRejected(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{ID: 5, Owner: buyer, Status: entity.OrderStatusCancelled}, nil)

	_, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotActive)
}

func TestOrderService_Settle_EmptyBasketRejected(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{ID: 5, Owner: buyer, Status: entity.OrderStatusActive}, nil)

	_, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestOrderService_Settle_ItemFailureAbortsBasket(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	ordersAddr := entity.NormalizeAddress("orders")
	marketAddr := entity.NormalizeAddress("market")
	key1 := entity.NewItemKey("store-1", "v1")
	key2 := entity.NewItemKey("store-2", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{
			ID:     5,
			Owner:  buyer,
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1, key2},
		}, nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key1).Return(decimal.NewFromInt(10), nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key2).Return(decimal.NewFromInt(20), nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, uint64(5), entity.OrderStatusPurchased).Return(nil)
	accounts.EXPECT().Debit(ctx, ordersAddr, decimal.NewFromInt(10)).Return(nil)
	accounts.EXPECT().Credit(ctx, marketAddr, decimal.NewFromInt(10)).Return(nil)
	fx.settler.EXPECT().SettleItem(ctx, mock.Anything, buyer, key1, decimal.NewFromInt(10)).
		Return(&service.ItemSettlement{Key: key1, Buyer: buyer, Price: decimal.NewFromInt(10)}, nil)

	// The second item refuses to settle; the enclosing transaction rolls
	// back everything including the already-settled first item.
	accounts.EXPECT().Debit(ctx, ordersAddr, decimal.NewFromInt(20)).Return(nil)
	accounts.EXPECT().Credit(ctx, marketAddr, decimal.NewFromInt(20)).Return(nil)
	fx.settler.EXPECT().SettleItem(ctx, mock.Anything, buyer, key2, decimal.NewFromInt(20)).
		Return(nil, domainerrors.ErrNotForSale)

	_, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(30))

	assert.ErrorIs(t, err, domainerrors.ErrNotForSale)
}

func TestOrderService_Settle_MalformedReference(t *testing.T) {
	svc, _ := createTestOrderService(t)
	target := svc.(service.SettlementTarget)

	factory := mockRepo.NewMockRepositoryFactory(t)

	_, err := target.Settle(context.Background(), factory, entity.NormalizeAddress("buyer"), "not-an-id", decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestOrderService_GetPrice_SumsEffectivePrices(t *testing.T) {
	svc, fx := createTestOrderService(t)
	ctx := context.Background()

	key1 := entity.NewItemKey("store-1", "v1")
	key2 := entity.NewItemKey("store-2", "v1")

	fx.orderRepo.EXPECT().FindOrder(ctx, uint64(5)).
		Return(&entity.Order{
			ID:     5,
			Owner:  entity.NormalizeAddress("buyer"),
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1, key2},
		}, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockRepo.NewMockRepositoryFactory(t))
		})

	// One item is oracle-priced at base 5000 with rate 100; the pricing
	// pass hands back the converted 50, and the basket sums that, not the
	// raw base price.
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key1).Return(decimal.NewFromInt(50), nil)
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key2).Return(decimal.NewFromInt(20), nil)

	total, err := svc.GetPrice(ctx, 5)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(70)))
}

func TestOrderService_Settle_UsesEffectivePrices(t *testing.T) {
	svc, fx := createTestOrderService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	ordersAddr := entity.NormalizeAddress("orders")
	marketAddr := entity.NormalizeAddress("market")
	key1 := entity.NewItemKey("store-1", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	fx.orderRepo.EXPECT().FindOrderForUpdate(ctx, uint64(5)).
		Return(&entity.Order{
			ID:     5,
			Owner:  buyer,
			Status: entity.OrderStatusActive,
			Items:  []entity.ItemKey{key1},
		}, nil)

	// The item's converted price is 50; a payment of exactly 50 settles,
	// and the per-item debit, credit and settlement all carry 50, never
	// the unconverted base price.
	fx.settler.EXPECT().ItemPrice(ctx, mock.Anything, key1).Return(decimal.NewFromInt(50), nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, uint64(5), entity.OrderStatusPurchased).Return(nil)
	accounts.EXPECT().Debit(ctx, ordersAddr, decimal.NewFromInt(50)).Return(nil)
	accounts.EXPECT().Credit(ctx, marketAddr, decimal.NewFromInt(50)).Return(nil)
	fx.settler.EXPECT().SettleItem(ctx, mock.Anything, buyer, key1, decimal.NewFromInt(50)).
		Return(&service.ItemSettlement{Key: key1, Buyer: buyer, Price: decimal.NewFromInt(50)}, nil)

	events, err := target.Settle(ctx, factory, buyer, "5", decimal.NewFromInt(50))

	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestOrderService_Withdraw_RequiresAdmin(t *testing.T) {
	svc, _ := createTestOrderService(t)

	err := svc.Withdraw(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("mallory")},
		entity.NormalizeAddress("payout"),
		decimal.NewFromInt(10),
	)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
