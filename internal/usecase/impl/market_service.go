// Package impl contains the concrete use case services of the settlement
// engine.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"datadex/config"
	"datadex/internal/domain/constants"
	"datadex/internal/domain/entity"
	domainerrors "datadex/internal/domain/errors"
	"datadex/internal/domain/repository"
	"datadex/internal/domain/service"
	"datadex/internal/usecase"
)

var oneHundred = decimal.NewFromInt(100)

type marketService struct {
	itemRepo   repository.ItemRepository
	storeRepo  repository.StoreRepository
	sellerRepo repository.SellerBalanceRepository
	registry   repository.RegistryRepository
	txManager  repository.TransactionManager
	publisher  service.EventPublisher
	logger     *slog.Logger

	marketAddr   entity.Address
	platformAddr entity.Address
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	ItemRepo   repository.ItemRepository
	StoreRepo  repository.StoreRepository
	SellerRepo repository.SellerBalanceRepository
	Registry   repository.RegistryRepository
	TxManager  repository.TransactionManager
	Publisher  service.EventPublisher
	Logger     *slog.Logger
	Config     *config.Config
}

// NewMarketService creates the item marketplace service. The returned value
// also implements service.SettlementTarget and service.ItemSettler.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		itemRepo:     params.ItemRepo,
		storeRepo:    params.StoreRepo,
		sellerRepo:   params.SellerRepo,
		registry:     params.Registry,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		logger:       params.Logger,
		marketAddr:   entity.NormalizeAddress(params.Config.Settlement.MarketAddress),
		platformAddr: entity.NormalizeAddress(params.Config.Settlement.PlatformAddress),
	}
}

// NewItemSettler exposes the marketplace's per-item settlement to the
// order aggregator.
func NewItemSettler(market usecase.MarketUsecase) (service.ItemSettler, error) {
	settler, ok := market.(service.ItemSettler)
	if !ok {
		return nil, errors.New("market usecase does not settle items")
	}

	return settler, nil
}

// ComponentAddress implements service.SettlementTarget.
func (s *marketService) ComponentAddress() entity.Address {
	return s.marketAddr
}

// SetPrice sets an item's price, creating the item on first use.
func (s *marketService) SetPrice(ctx context.Context, caller usecase.Caller, key entity.ItemKey, price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.ErrInvalidArgument.WithDetails("price must not be negative")
	}

	var oldPrice decimal.Decimal
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		item, err := s.authorizedItem(ctx, f, caller.Address, key)
		if err != nil {
			return err
		}

		oldPrice = item.Price
		item.Price = price

		return f.NewItemRepository().UpsertItem(ctx, item)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:     constants.EventPriceChanged,
		Store:    key.Store.String(),
		Version:  key.Version,
		By:       caller.Address.String(),
		OldValue: oldPrice.String(),
		NewValue: price.String(),
	})

	return nil
}

// SetSale toggles the item's on-sale flag.
func (s *marketService) SetSale(ctx context.Context, caller usecase.Caller, key entity.ItemKey, onSale bool) error {
	var oldSale bool
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		item, err := s.authorizedItem(ctx, f, caller.Address, key)
		if err != nil {
			return err
		}

		oldSale = item.OnSale
		item.OnSale = onSale

		return f.NewItemRepository().UpsertItem(ctx, item)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:     constants.EventSaleChanged,
		Store:    key.Store.String(),
		Version:  key.Version,
		By:       caller.Address.String(),
		OldValue: boolString(oldSale),
		NewValue: boolString(onSale),
	})

	return nil
}

// SetOraclePricing opts the item into exchange-rate pricing.
func (s *marketService) SetOraclePricing(ctx context.Context, caller usecase.Caller, key entity.ItemKey, enabled bool) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		item, err := s.authorizedItem(ctx, f, caller.Address, key)
		if err != nil {
			return err
		}

		item.OraclePriced = enabled

		return f.NewItemRepository().UpsertItem(ctx, item)
	})
}

// GetItem returns the stored item.
func (s *marketService) GetItem(ctx context.Context, key entity.ItemKey) (*entity.Item, error) {
	item, err := s.itemRepo.FindItem(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// GetPrice returns the item's effective price.
func (s *marketService) GetPrice(ctx context.Context, key entity.ItemKey) (decimal.Decimal, error) {
	item, err := s.GetItem(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}

	return s.effectivePrice(ctx, s.registry, item)
}

// IsSale reports whether the item is currently for sale.
func (s *marketService) IsSale(ctx context.Context, key entity.ItemKey) (bool, error) {
	item, err := s.itemRepo.FindItem(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find item")
	}

	return item.OnSale, nil
}

// GetPurchaseStatus reports whether addr holds purchase rights for key.
// The store owner is always considered purchased for their own items.
func (s *marketService) GetPurchaseStatus(ctx context.Context, addr entity.Address, key entity.ItemKey) (bool, error) {
	store, err := s.storeRepo.FindStore(ctx, key.Store)
	if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
		return false, errors.Wrap(err, "failed to find store")
	}
	if store != nil && store.Owner == addr {
		return true, nil
	}

	purchased, err := s.itemRepo.HasPurchase(ctx, addr, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to check purchase status")
	}

	return purchased, nil
}

// SellerBalance returns the owner's accrued, withdrawable proceeds.
func (s *marketService) SellerBalance(ctx context.Context, owner entity.Address) (decimal.Decimal, error) {
	balance, err := s.sellerRepo.SellerBalance(ctx, owner)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to load seller balance")
	}

	return balance, nil
}

// Withdraw pays out part of the caller's accrued seller balance.
func (s *marketService) Withdraw(ctx context.Context, caller usecase.Caller, to entity.Address, amount decimal.Decimal) error {
	if to.IsZero() || !amount.IsPositive() {
		return domainerrors.ErrInvalidArgument.WithDetails("withdrawal needs a recipient and a positive amount")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewSellerBalanceRepository().Deduct(ctx, caller.Address, amount); err != nil {
			if errors.Is(err, repository.ErrSellerBalanceInsufficient) {
				return domainerrors.ErrInsufficientBalance.WithDetails("amount exceeds accrued seller balance")
			}

			return errors.Wrap(err, "failed to deduct seller balance")
		}

		// The marketplace account backs every seller balance, so the payout
		// is a plain ledger movement out of it.
		accounts := f.NewAccountRepository()
		if err := accounts.Debit(ctx, s.marketAddr, amount); err != nil {
			return errors.Wrap(err, "failed to debit marketplace account")
		}

		return accounts.Credit(ctx, to, amount)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:   constants.EventWithdrawn,
		By:     caller.Address.String(),
		Seller: to.String(),
		Amount: amount.String(),
	})

	return nil
}

// Settle implements service.SettlementTarget for direct item purchases.
// The ledger has already credited the marketplace account with amount.
func (s *marketService) Settle(ctx context.Context, repos repository.RepositoryFactory, buyer entity.Address, reference string, amount decimal.Decimal) ([]*service.MarketEvent, error) {
	key, err := entity.ParseItemKey(reference)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	settlement, err := s.SettleItem(ctx, repos, buyer, key, amount)
	if err != nil {
		return nil, err
	}

	return []*service.MarketEvent{settlementEvent(settlement)}, nil
}

// SettleItem implements service.ItemSettler. It validates the sale, splits
// amount between seller, platform and facilitator, and records the buyer's
// purchase right. The caller guarantees that amount has already been
// credited to the marketplace account; purchase state is written before
// any value moves onward.
func (s *marketService) SettleItem(ctx context.Context, repos repository.RepositoryFactory, buyer entity.Address, key entity.ItemKey, amount decimal.Decimal) (*service.ItemSettlement, error) {
	items := repos.NewItemRepository()

	item, err := items.FindItemForUpdate(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrNotForSale.WithDetails("item has never been priced")
		}

		return nil, errors.Wrap(err, "failed to load item")
	}
	if !item.OnSale {
		return nil, domainerrors.ErrNotForSale
	}

	registry := repos.NewRegistryRepository()
	price, err := s.effectivePrice(ctx, registry, item)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(price) {
		return nil, domainerrors.ErrPriceMismatch.WithDetails("payment " + amount.String() + " is below price " + price.String())
	}

	store, err := repos.NewStoreRepository().FindStore(ctx, key.Store)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store")
	}
	if buyer == store.Owner {
		// The owner is implicitly purchased for their own items.
		return nil, domainerrors.ErrAlreadyPurchased.WithDetails("owner already holds their own items")
	}

	purchased, err := items.HasPurchase(ctx, buyer, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase status")
	}
	if purchased {
		return nil, domainerrors.ErrAlreadyPurchased
	}

	platformShare, facilitatorShare, sellerShare, err := s.splitShares(ctx, registry, amount)
	if err != nil {
		return nil, err
	}

	// Purchase right and seller accrual first, fee transfers after: a
	// re-entrant notified transfer must never see a half-settled sale.
	if err := items.RecordPurchase(ctx, buyer, key); err != nil {
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			return nil, domainerrors.ErrAlreadyPurchased
		}

		return nil, errors.Wrap(err, "failed to record purchase")
	}
	if err := repos.NewSellerBalanceRepository().Accrue(ctx, store.Owner, sellerShare); err != nil {
		return nil, errors.Wrap(err, "failed to accrue seller balance")
	}

	accounts := repos.NewAccountRepository()
	fees := platformShare.Add(facilitatorShare)
	if fees.IsPositive() {
		if err := accounts.Debit(ctx, s.marketAddr, fees); err != nil {
			return nil, errors.Wrap(err, "failed to debit marketplace account for fees")
		}
	}
	if platformShare.IsPositive() {
		if err := accounts.Credit(ctx, s.platformAddr, platformShare); err != nil {
			return nil, errors.Wrap(err, "failed to credit platform share")
		}
	}
	if facilitatorShare.IsPositive() {
		if err := accounts.Credit(ctx, store.Location, facilitatorShare); err != nil {
			return nil, errors.Wrap(err, "failed to credit facilitator share")
		}
	}

	return &service.ItemSettlement{
		Key:              key,
		Buyer:            buyer,
		Seller:           store.Owner,
		Price:            amount,
		SellerShare:      sellerShare,
		PlatformShare:    platformShare,
		FacilitatorShare: facilitatorShare,
	}, nil
}

// ItemPrice implements service.ItemSettler. It resolves an item's current
// effective price inside an already-open transaction.
func (s *marketService) ItemPrice(ctx context.Context, repos repository.RepositoryFactory, key entity.ItemKey) (decimal.Decimal, error) {
	item, err := repos.NewItemRepository().FindItem(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return decimal.Zero, domainerrors.ErrItemNotFound
		}

		return decimal.Zero, errors.Wrap(err, "failed to load item")
	}

	return s.effectivePrice(ctx, repos.NewRegistryRepository(), item)
}

// authorizedItem loads (or initializes) the item and verifies the caller is
// the owner of its store.
func (s *marketService) authorizedItem(ctx context.Context, f repository.RepositoryFactory, caller entity.Address, key entity.ItemKey) (*entity.Item, error) {
	store, err := f.NewStoreRepository().FindStore(ctx, key.Store)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store")
	}
	if store.Owner != caller {
		return nil, domainerrors.ErrNotAuthorized.WithDetails("only the store owner may manage its items")
	}

	item, err := f.NewItemRepository().FindItemForUpdate(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			// Items come into existence on the owner's first price-set.
			return &entity.Item{Key: key}, nil
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	return item, nil
}

// effectivePrice converts oracle-priced items through the exchange rate.
func (s *marketService) effectivePrice(ctx context.Context, registry repository.RegistryRepository, item *entity.Item) (decimal.Decimal, error) {
	if !item.OraclePriced {
		return item.Price, nil
	}

	rate, err := registry.FindRate(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return decimal.Zero, domainerrors.ErrRateUnset
		}

		return decimal.Zero, errors.Wrap(err, "failed to load exchange rate")
	}
	if rate.Rate <= 0 {
		return decimal.Zero, domainerrors.ErrRateUnset
	}

	return item.Price.Div(decimal.NewFromInt(rate.Rate)).Floor(), nil
}

// splitShares divides amount using the registry percentages. Truncation
// leaves the rounding remainder with the seller, never destroying value.
func (s *marketService) splitShares(ctx context.Context, registry repository.RegistryRepository, amount decimal.Decimal) (platform, facilitator, seller decimal.Decimal, err error) {
	platformSplit, err := registry.FindSplit(ctx, constants.SplitSlotPlatform)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, errors.Wrap(err, "failed to load platform percentage")
	}
	facilitatorSplit, err := registry.FindSplit(ctx, constants.SplitSlotFacilitator)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, errors.Wrap(err, "failed to load facilitator percentage")
	}

	platform = amount.Mul(decimal.NewFromInt(int64(platformSplit.Percentage))).Div(oneHundred).Floor()
	facilitator = amount.Mul(decimal.NewFromInt(int64(facilitatorSplit.Percentage))).Div(oneHundred).Floor()
	seller = amount.Sub(platform).Sub(facilitator)

	return platform, facilitator, seller, nil
}

func (s *marketService) publish(ctx context.Context, event *service.MarketEvent) {
	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish market event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

func settlementEvent(settlement *service.ItemSettlement) *service.MarketEvent {
	return &service.MarketEvent{
		Type:             constants.EventItemSettled,
		Buyer:            settlement.Buyer.String(),
		Seller:           settlement.Seller.String(),
		Store:            settlement.Key.Store.String(),
		Version:          settlement.Key.Version,
		Amount:           settlement.Price.String(),
		SellerShare:      settlement.SellerShare.String(),
		PlatformShare:    settlement.PlatformShare.String(),
		FacilitatorShare: settlement.FacilitatorShare.String(),
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
