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

const testNetworkID int64 = 31337

type ledgerServiceFixtures struct {
	accountRepo *mockRepo.MockAccountRepository
	receiptRepo *mockRepo.MockReceiptRepository
	txManager   *mockRepo.MockTransactionManager
	publisher   *mockSvc.MockEventPublisher
	target      *mockSvc.MockSettlementTarget
}

func createTestLedgerService(t *testing.T) (usecase.LedgerUsecase, *ledgerServiceFixtures) {
	t.Helper()

	fx := &ledgerServiceFixtures{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		receiptRepo: mockRepo.NewMockReceiptRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		target:      mockSvc.NewMockSettlementTarget(t),
	}

	svc := NewLedgerService(LedgerServiceParams{
		AccountRepo: fx.accountRepo,
		ReceiptRepo: fx.receiptRepo,
		TxManager:   fx.txManager,
		Targets:     SettlementTargets{entity.NormalizeAddress("market"): fx.target},
		Publisher:   fx.publisher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			Settlement: &config.SettlementConfig{NetworkID: testNetworkID},
		},
	})

	return svc, fx
}

func TestLedgerService_TransferWithNotify_Succeeds(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	market := entity.NormalizeAddress("market")
	caller := usecase.Caller{Address: buyer}
	amount := decimal.NewFromInt(20)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, buyer, amount).Return(nil)
	fx.accountRepo.EXPECT().Credit(ctx, market, amount).Return(nil)
	fx.receiptRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Receipt")).
		Run(func(ctx context.Context, receipt *entity.Receipt) {
			receipt.ID = 7
		}).
		Return(nil)
	fx.target.EXPECT().Settle(ctx, mock.Anything, buyer, "store-1:v1", amount).
		Return([]*service.MarketEvent{{Type: constants.EventItemSettled}}, nil)

	// The transfer event plus the one hook event, both after commit.
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil).Times(2)

	receipt, err := svc.TransferWithNotify(ctx, caller, market, "store-1:v1", amount)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), receipt.ID)
	assert.Equal(t, buyer, receipt.Buyer)
	assert.Equal(t, market, receipt.Seller)
}

func TestLedgerService_TransferWithNotify_UnknownRecipient(t *testing.T) {
	svc, _ := createTestLedgerService(t)

	_, err := svc.TransferWithNotify(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("buyer")},
		entity.NormalizeAddress("somebody"),
		"store-1:v1",
		decimal.NewFromInt(20),
	)

	assert.ErrorIs(t, err, domainerrors.ErrUnknownRecipient)
}

func TestLedgerService_TransferWithNotify_HookFailureUnwinds(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	market := entity.NormalizeAddress("market")
	amount := decimal.NewFromInt(20)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, buyer, amount).Return(nil)
	fx.accountRepo.EXPECT().Credit(ctx, market, amount).Return(nil)
	fx.receiptRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Receipt")).Return(nil)
	fx.target.EXPECT().Settle(ctx, mock.Anything, buyer, "store-1:v1", amount).
		Return(nil, domainerrors.ErrNotForSale)

	// No events may leak from a rolled-back settlement.
	_, err := svc.TransferWithNotify(ctx, usecase.Caller{Address: buyer}, market, "store-1:v1", amount)

	assert.ErrorIs(t, err, domainerrors.ErrNotForSale)
}

func TestLedgerService_TransferWithNotify_InsufficientBalance(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	buyer := entity.NormalizeAddress("buyer")
	market := entity.NormalizeAddress("market")
	amount := decimal.NewFromInt(20)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, buyer, amount).Return(repository.ErrInsufficientBalance)

	_, err := svc.TransferWithNotify(ctx, usecase.Caller{Address: buyer}, market, "store-1:v1", amount)

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestLedgerService_Mint_Succeeds(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	admin := usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}}
	to := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(1000)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{MintPaused: false}, nil)
	fx.accountRepo.EXPECT().Credit(ctx, to, amount).Return(nil)
	fx.accountRepo.EXPECT().AddSupply(ctx, amount).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.Mint(ctx, admin, to, amount)

	require.NoError(t, err)
}

func TestLedgerService_Mint_PausedRejected(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	admin := usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}}

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{MintPaused: true}, nil)

	err := svc.Mint(ctx, admin, entity.NormalizeAddress("alice"), decimal.NewFromInt(1000))

	assert.ErrorIs(t, err, domainerrors.ErrMintPaused)
}

func TestLedgerService_Mint_UnapprovedCallerRejected(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	caller := usecase.Caller{Address: entity.NormalizeAddress("mallory")}

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().IsMinter(ctx, caller.Address).Return(false, nil)

	err := svc.Mint(ctx, caller, entity.NormalizeAddress("alice"), decimal.NewFromInt(1000))

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestLedgerService_Mint_ApprovedMinterAllowed(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	minter := usecase.Caller{Address: entity.NormalizeAddress("minter")}
	to := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(5)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().IsMinter(ctx, minter.Address).Return(true, nil)
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{}, nil)
	fx.accountRepo.EXPECT().Credit(ctx, to, amount).Return(nil)
	fx.accountRepo.EXPECT().AddSupply(ctx, amount).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.Mint(ctx, minter, to, amount)

	require.NoError(t, err)
}

func TestLedgerService_Burn_DerivesDetailHash(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	burner := entity.NormalizeAddress("alice")
	caller := usecase.Caller{Address: burner}
	amount := decimal.NewFromInt(50)
	wantHash := service.BurnDetailHash(42, burner, amount, "cash out")
	burns := mockRepo.NewMockBurnRepository(t)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewBurnRepository().Return(burns)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, burner, amount).Return(nil)
	fx.accountRepo.EXPECT().AddSupply(ctx, amount.Neg()).Return(nil)
	burns.EXPECT().CreateBurn(ctx, mock.AnythingOfType("*entity.BurnRequest")).
		Run(func(ctx context.Context, burn *entity.BurnRequest) {
			burn.ID = 42
		}).
		Return(nil)
	burns.EXPECT().SaveDetailHash(ctx, uint64(42), wantHash).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	burn, err := svc.Burn(ctx, caller, amount, "cash out")

	require.NoError(t, err)
	assert.Equal(t, uint64(42), burn.ID)
	assert.Equal(t, wantHash, burn.DetailHash)
}

func TestLedgerService_Burn_InsufficientBalance(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	burner := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(50)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, burner, amount).Return(repository.ErrInsufficientBalance)

	_, err := svc.Burn(ctx, usecase.Caller{Address: burner}, amount, "")

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestLedgerService_BridgeMint_Succeeds(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	admin := usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}}
	burner := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(50)
	hash := service.BurnDetailHash(42, burner, amount, "cash out")
	burns := mockRepo.NewMockBurnRepository(t)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewBurnRepository().Return(burns)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{}, nil)
	burns.EXPECT().FindBurnForUpdate(ctx, uint64(42)).
		Return(&entity.BurnRequest{ID: 42, Burner: burner, Amount: amount, DetailHash: hash}, nil)
	burns.EXPECT().MarkReminted(ctx, uint64(42)).Return(nil)
	fx.accountRepo.EXPECT().Credit(ctx, burner, amount).Return(nil)
	fx.accountRepo.EXPECT().AddSupply(ctx, amount).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.BridgeMint(ctx, admin, 42, burner, amount, hash, testNetworkID)

	require.NoError(t, err)
}

func TestLedgerService_BridgeMint_WrongNetwork(t *testing.T) {
	svc, _ := createTestLedgerService(t)

	err := svc.BridgeMint(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}},
		42,
		entity.NormalizeAddress("alice"),
		decimal.NewFromInt(50),
		"hash",
		testNetworkID+1,
	)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestLedgerService_BridgeMint_ReplayRejected(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	admin := usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}}
	burner := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(50)
	burns := mockRepo.NewMockBurnRepository(t)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewBurnRepository().Return(burns)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{}, nil)
	burns.EXPECT().FindBurnForUpdate(ctx, uint64(42)).
		Return(&entity.BurnRequest{ID: 42, Burner: burner, Amount: amount, DetailHash: "hash", Reminted: true}, nil)

	err := svc.BridgeMint(ctx, admin, 42, burner, amount, "hash", testNetworkID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestLedgerService_BridgeMint_ParameterMismatch(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	admin := usecase.Caller{Address: entity.NormalizeAddress("admin"), Roles: []string{constants.RoleAdmin}}
	burner := entity.NormalizeAddress("alice")
	burns := mockRepo.NewMockBurnRepository(t)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
			factory.EXPECT().NewBurnRepository().Return(burns)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().LedgerState(ctx).Return(&entity.LedgerState{}, nil)
	burns.EXPECT().FindBurnForUpdate(ctx, uint64(42)).
		Return(&entity.BurnRequest{ID: 42, Burner: burner, Amount: decimal.NewFromInt(50), DetailHash: "hash"}, nil)

	err := svc.BridgeMint(ctx, admin, 42, burner, decimal.NewFromInt(51), "hash", testNetworkID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestLedgerService_Balance_AbsentAccountIsZero(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	addr := entity.NormalizeAddress("nobody")
	fx.accountRepo.EXPECT().FindAccount(ctx, addr).Return(nil, repository.ErrAccountNotFound)

	balance, err := svc.Balance(ctx, addr)

	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestLedgerService_SetMintPause_RequiresPauserRole(t *testing.T) {
	svc, _ := createTestLedgerService(t)

	err := svc.SetMintPause(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("mallory")},
		true,
	)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestLedgerService_AddMinter_RequiresAdmin(t *testing.T) {
	svc, _ := createTestLedgerService(t)

	err := svc.AddMinter(context.Background(),
		usecase.Caller{Address: entity.NormalizeAddress("mallory")},
		entity.NormalizeAddress("minter"),
	)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestLedgerService_Transfer_Succeeds(t *testing.T) {
	svc, fx := createTestLedgerService(t)
	ctx := context.Background()

	from := entity.NormalizeAddress("alice")
	to := entity.NormalizeAddress("bob")
	amount := decimal.NewFromInt(12)

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)

			return fn(factory)
		})
	fx.accountRepo.EXPECT().Debit(ctx, from, amount).Return(nil)
	fx.accountRepo.EXPECT().Credit(ctx, to, amount).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).Return(nil)

	err := svc.Transfer(ctx, usecase.Caller{Address: from}, to, amount)

	require.NoError(t, err)
}
