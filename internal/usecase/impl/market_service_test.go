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
	"datadex/internal/domain/constants"
	"datadex/internal/domain/entity"
	domainerrors "datadex/internal/domain/errors"
	"datadex/internal/domain/repository"
	"datadex/internal/domain/service"
	mockRepo "datadex/internal/mocks/repository"
	mockSvc "datadex/internal/mocks/service"
	"datadex/internal/usecase"
)

type marketServiceFixtures struct {
	itemRepo   *mockRepo.MockItemRepository
	storeRepo  *mockRepo.MockStoreRepository
	sellerRepo *mockRepo.MockSellerBalanceRepository
	registry   *mockRepo.MockRegistryRepository
	txManager  *mockRepo.MockTransactionManager
	publisher  *mockSvc.MockEventPublisher
}

func createTestMarketService(t *testing.T) (usecase.MarketUsecase, *marketServiceFixtures) {
	t.Helper()

	fx := &marketServiceFixtures{
		itemRepo:   mockRepo.NewMockItemRepository(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		sellerRepo: mockRepo.NewMockSellerBalanceRepository(t),
		registry:   mockRepo.NewMockRegistryRepository(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	svc := NewMarketService(MarketServiceParams{
		ItemRepo:   fx.itemRepo,
		StoreRepo:  fx.storeRepo,
		SellerRepo: fx.sellerRepo,
		Registry:   fx.registry,
		TxManager:  fx.txManager,
		Publisher:  fx.publisher,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			Settlement: &config.SettlementConfig{
				MarketAddress:   "market",
				PlatformAddress: "platform",
			},
		},
	})

	return svc, fx
}

// settlementFactory wires the per-transaction repositories SettleItem asks
// the factory for.
func settlementFactory(t *testing.T, fx *marketServiceFixtures) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewItemRepository().Return(fx.itemRepo).Maybe()
	factory.EXPECT().NewStoreRepository().Return(fx.storeRepo).Maybe()
	factory.EXPECT().NewRegistryRepository().Return(fx.registry).Maybe()
	factory.EXPECT().NewSellerBalanceRepository().Return(fx.sellerRepo).Maybe()

	return factory
}

func TestMarketService_SettleItem_SplitsShares(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key := entity.NewItemKey("store-1", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)
	factory := settlementFactory(t, fx)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(20), OnSale: true}, nil)
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{
			Address:  key.Store,
			Owner:    entity.NormalizeAddress("seller"),
			Location: entity.NormalizeAddress("facilitator"),
		}, nil)
	fx.itemRepo.EXPECT().HasPurchase(ctx, buyer, key).Return(false, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotPlatform).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotPlatform, Percentage: 15}, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotFacilitator).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotFacilitator, Percentage: 5}, nil)

	// Purchase right and accrual land before any fee movement.
	fx.itemRepo.EXPECT().RecordPurchase(ctx, buyer, key).Return(nil)
	fx.sellerRepo.EXPECT().Accrue(ctx, entity.NormalizeAddress("seller"), decimal.NewFromInt(16)).Return(nil)
	accounts.EXPECT().Debit(ctx, entity.NormalizeAddress("market"), decimal.NewFromInt(4)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("platform"), decimal.NewFromInt(3)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("facilitator"), decimal.NewFromInt(1)).Return(nil)

	settlement, err := settler.SettleItem(ctx, factory, buyer, key, decimal.NewFromInt(20))

	require.NoError(t, err)
	assert.True(t, settlement.SellerShare.Equal(decimal.NewFromInt(16)))
	assert.True(t, settlement.PlatformShare.Equal(decimal.NewFromInt(3)))
	assert.True(t, settlement.FacilitatorShare.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, entity.NormalizeAddress("seller"), settlement.Seller)
}

func TestMarketService_SettleItem_RoundingFavorsSeller(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key := entity.NewItemKey("store-1", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)
	factory := settlementFactory(t, fx)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	// 33 splits into platform 4.95 -> 4 and facilitator 1.65 -> 1; the
	// truncated remainder stays with the seller.
	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(33), OnSale: true}, nil)
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{
			Address:  key.Store,
			Owner:    entity.NormalizeAddress("seller"),
			Location: entity.NormalizeAddress("facilitator"),
		}, nil)
	fx.itemRepo.EXPECT().HasPurchase(ctx, buyer, key).Return(false, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotPlatform).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotPlatform, Percentage: 15}, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotFacilitator).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotFacilitator, Percentage: 5}, nil)
	fx.itemRepo.EXPECT().RecordPurchase(ctx, buyer, key).Return(nil)
	fx.sellerRepo.EXPECT().Accrue(ctx, entity.NormalizeAddress("seller"), decimal.NewFromInt(28)).Return(nil)
	accounts.EXPECT().Debit(ctx, entity.NormalizeAddress("market"), decimal.NewFromInt(5)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("platform"), decimal.NewFromInt(4)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("facilitator"), decimal.NewFromInt(1)).Return(nil)

	settlement, err := settler.SettleItem(ctx, factory, buyer, key, decimal.NewFromInt(33))

	require.NoError(t, err)
	total := settlement.SellerShare.Add(settlement.PlatformShare).Add(settlement.FacilitatorShare)
	assert.True(t, total.Equal(decimal.NewFromInt(33)), "split must conserve the paid amount")
	assert.True(t, settlement.SellerShare.Equal(decimal.NewFromInt(28)))
}

func TestMarketService_SettleItem_NotForSale(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(20), OnSale: false}, nil)

	_, err := settler.SettleItem(ctx, factory, buyer, key, decimal.NewFromInt(20))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotForSale)
}

func TestMarketService_SettleItem_UnpricedItem(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v9")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).Return(nil, repository.ErrItemNotFound)

	_, err := settler.SettleItem(ctx, factory, entity.NormalizeAddress("buyer"), key, decimal.NewFromInt(20))

	assert.ErrorIs(t, err, domainerrors.ErrNotForSale)
}

func TestMarketService_SettleItem_BelowPrice(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(20), OnSale: true}, nil)

	_, err := settler.SettleItem(ctx, factory, entity.NormalizeAddress("buyer"), key, decimal.NewFromInt(19))

	assert.ErrorIs(t, err, domainerrors.ErrPriceMismatch)
}

func TestMarketService_SettleItem_AlreadyPurchased(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(20), OnSale: true}, nil)
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{Address: key.Store, Owner: entity.NormalizeAddress("seller")}, nil)
	fx.itemRepo.EXPECT().HasPurchase(ctx, buyer, key).Return(true, nil)

	_, err := settler.SettleItem(ctx, factory, buyer, key, decimal.NewFromInt(20))

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
}

func TestMarketService_SettleItem_OwnerImplicitlyPurchased(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	owner := entity.NormalizeAddress("seller")
	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(20), OnSale: true}, nil)
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{Address: key.Store, Owner: owner}, nil)

	_, err := settler.SettleItem(ctx, factory, owner, key, decimal.NewFromInt(20))

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
}

func TestMarketService_SettleItem_OraclePricing(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	key := entity.NewItemKey("store-1", "v1")
	accounts := mockRepo.NewMockAccountRepository(t)
	factory := settlementFactory(t, fx)
	factory.EXPECT().NewAccountRepository().Return(accounts)

	// Listed at 100 with rate 3: the effective price is floor(100/3) = 33.
	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(100), OnSale: true, OraclePriced: true}, nil)
	fx.registry.EXPECT().FindRate(ctx).Return(&entity.ExchangeRate{Rate: 3}, nil)
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{
			Address:  key.Store,
			Owner:    entity.NormalizeAddress("seller"),
			Location: entity.NormalizeAddress("facilitator"),
		}, nil)
	fx.itemRepo.EXPECT().HasPurchase(ctx, buyer, key).Return(false, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotPlatform).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotPlatform, Percentage: 15}, nil)
	fx.registry.EXPECT().FindSplit(ctx, constants.SplitSlotFacilitator).
		Return(&entity.RevenueSplit{Slot: constants.SplitSlotFacilitator, Percentage: 5}, nil)
	fx.itemRepo.EXPECT().RecordPurchase(ctx, buyer, key).Return(nil)
	fx.sellerRepo.EXPECT().Accrue(ctx, entity.NormalizeAddress("seller"), decimal.NewFromInt(28)).Return(nil)
	accounts.EXPECT().Debit(ctx, entity.NormalizeAddress("market"), decimal.NewFromInt(5)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("platform"), decimal.NewFromInt(4)).Return(nil)
	accounts.EXPECT().Credit(ctx, entity.NormalizeAddress("facilitator"), decimal.NewFromInt(1)).Return(nil)

	settlement, err := settler.SettleItem(ctx, factory, buyer, key, decimal.NewFromInt(33))

	require.NoError(t, err)
	assert.True(t, settlement.Price.Equal(decimal.NewFromInt(33)))
}

func TestMarketService_SettleItem_OracleRateUnset(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(100), OnSale: true, OraclePriced: true}, nil)
	fx.registry.EXPECT().FindRate(ctx).Return(nil, repository.ErrRateNotFound)

	_, err := settler.SettleItem(ctx, factory, entity.NormalizeAddress("buyer"), key, decimal.NewFromInt(100))

	assert.ErrorIs(t, err, domainerrors.ErrRateUnset)
}

func TestMarketService_ItemPrice_ConvertsOracleItems(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	// Listed at 5000 with rate 100: the quote is the converted 50, alone
	// or as a basket constituent.
	fx.itemRepo.EXPECT().FindItem(ctx, key).
		Return(&entity.Item{Key: key, Price: decimal.NewFromInt(5000), OnSale: true, OraclePriced: true}, nil)
	fx.registry.EXPECT().FindRate(ctx).Return(&entity.ExchangeRate{Rate: 100}, nil)

	price, err := settler.ItemPrice(ctx, factory, key)

	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(50)))
}

func TestMarketService_ItemPrice_UnknownItem(t *testing.T) {
	svc, fx := createTestMarketService(t)
	settler := svc.(service.ItemSettler)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v1")
	factory := settlementFactory(t, fx)

	fx.itemRepo.EXPECT().FindItem(ctx, key).Return(nil, repository.ErrItemNotFound)

	_, err := settler.ItemPrice(ctx, factory, key)

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestMarketService_SetPrice_OnlyStoreOwner(t *testing.T) {
	svc, fx := createTestMarketService(t)
	ctx := context.Background()

	key := entity.NewItemKey("store-1", "v1")
	caller := usecase.Caller{Address: entity.NormalizeAddress("stranger")}

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewStoreRepository().Return(fx.storeRepo)

			return fn(factory)
		})
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{Address: key.Store, Owner: entity.NormalizeAddress("seller")}, nil)

	err := svc.SetPrice(ctx, caller, key, decimal.NewFromInt(20))

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestMarketService_SetPrice_CreatesItemOnFirstUse(t *testing.T) {
	svc, fx := createTestMarketService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("seller")
	key := entity.NewItemKey("store-1", "v1")
	caller := usecase.Caller{Address: owner}

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewStoreRepository().Return(fx.storeRepo)
			factory.EXPECT().NewItemRepository().Return(fx.itemRepo)

			return fn(factory)
		})
	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{Address: key.Store, Owner: owner}, nil)
	fx.itemRepo.EXPECT().FindItemForUpdate(ctx, key).Return(nil, repository.ErrItemNotFound)
	fx.itemRepo.EXPECT().UpsertItem(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			assert.Equal(t, key, item.Key)
			assert.True(t, item.Price.Equal(decimal.NewFromInt(20)))
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Run(func(ctx context.Context, event *service.MarketEvent) {
			assert.Equal(t, constants.EventPriceChanged, event.Type)
			assert.Equal(t, "20", event.NewValue)
		}).
		Return(nil)

	err := svc.SetPrice(ctx, caller, key, decimal.NewFromInt(20))

	require.NoError(t, err)
}

func TestMarketService_SetPrice_RejectsNegative(t *testing.T) {
	svc, _ := createTestMarketService(t)

	err := svc.SetPrice(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("seller")},
		entity.NewItemKey("store-1", "v1"),
		decimal.NewFromInt(-1),
	)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestMarketService_GetPurchaseStatus_OwnerAlwaysPurchased(t *testing.T) {
	svc, fx := createTestMarketService(t)
	ctx := context.Background()

	owner := entity.NormalizeAddress("seller")
	key := entity.NewItemKey("store-1", "v1")

	fx.storeRepo.EXPECT().FindStore(ctx, key.Store).
		Return(&entity.Store{Address: key.Store, Owner: owner}, nil)

	purchased, err := svc.GetPurchaseStatus(ctx, owner, key)

	require.NoError(t, err)
	assert.True(t, purchased)
}

func TestMarketService_Withdraw_Succeeds(t *testing.T) {
	svc, fx := createTestMarketService(t)
	ctx := context.Background()

	seller := entity.NormalizeAddress("seller")
	payout := entity.NormalizeAddress("payout")
	caller := usecase.Caller{Address: seller}
	accounts := mockRepo.NewMockAccountRepository(t)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewSellerBalanceRepository().Return(fx.sellerRepo)
			factory.EXPECT().NewAccountRepository().Return(accounts)

			return fn(factory)
		})
	fx.sellerRepo.EXPECT().Deduct(ctx, seller, decimal.NewFromInt(10)).Return(nil)
	accounts.EXPECT().Debit(ctx, entity.NormalizeAddress("market"), decimal.NewFromInt(10)).Return(nil)
	accounts.EXPECT().Credit(ctx, payout, decimal.NewFromInt(10)).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.Withdraw(ctx, caller, payout, decimal.NewFromInt(10))

	require.NoError(t, err)
}

func TestMarketService_Withdraw_InsufficientBalance(t *testing.T) {
	svc, fx := createTestMarketService(t)
	ctx := context.Background()

	seller := entity.NormalizeAddress("seller")
	caller := usecase.Caller{Address: seller}

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewSellerBalanceRepository().Return(fx.sellerRepo)

			return fn(factory)
		})
	fx.sellerRepo.EXPECT().Deduct(ctx, seller, decimal.NewFromInt(100)).
		Return(repository.ErrSellerBalanceInsufficient)

	err := svc.Withdraw(ctx, caller, entity.NormalizeAddress("payout"), decimal.NewFromInt(100))

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestMarketService_Settle_ParsesReference(t *testing.T) {
	svc, fx := createTestMarketService(t)
	target := svc.(service.SettlementTarget)
	ctx := context.Background()

	factory := settlementFactory(t, fx)

	_, err := target.Settle(ctx, factory, entity.NormalizeAddress("buyer"), "not-a-key", decimal.NewFromInt(20))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
