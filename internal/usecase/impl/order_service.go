package impl

import (
	"context"
	"log/slog"
	"strconv"

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

type orderService struct {
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	settler   service.ItemSettler
	publisher service.EventPublisher
	logger    *slog.Logger

	ordersAddr entity.Address
	marketAddr entity.Address
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	TxManager repository.TransactionManager
	Settler   service.ItemSettler
	Publisher service.EventPublisher
	Logger    *slog.Logger
	Config    *config.Config
}

// NewOrderService creates the basket aggregator service. The returned value
// also implements service.SettlementTarget.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:  params.OrderRepo,
		txManager:  params.TxManager,
		settler:    params.Settler,
		publisher:  params.Publisher,
		logger:     params.Logger,
		ordersAddr: entity.NormalizeAddress(params.Config.Settlement.OrdersAddress),
		marketAddr: entity.NormalizeAddress(params.Config.Settlement.MarketAddress),
	}
}

// ComponentAddress implements service.SettlementTarget.
func (s *orderService) ComponentAddress() entity.Address {
	return s.ordersAddr
}

// CreateOrder opens a new empty ACTIVE order for the caller.
func (s *orderService) CreateOrder(ctx context.Context, caller usecase.Caller) (*entity.Order, error) {
	return s.CreateAndAddOrder(ctx, caller, nil)
}

// CreateAndAddOrder opens a new order pre-populated with keys.
func (s *orderService) CreateAndAddOrder(ctx context.Context, caller usecase.Caller, keys []entity.ItemKey) (*entity.Order, error) {
	var order *entity.Order
	var added, skipped []entity.ItemKey

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()

		if _, err := orderRepo.FindActiveOrderByOwner(ctx, caller.Address); err == nil {
			return domainerrors.ErrActiveOrderExists
		} else if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check for active order")
		}

		order = &entity.Order{
			Owner:  caller.Address,
			Status: entity.OrderStatusActive,
		}
		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		var err error
		added, skipped, err = s.appendKeys(ctx, orderRepo, order, keys)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:    constants.EventOrderCreated,
		OrderID: order.ID,
		Buyer:   caller.Address.String(),
	})
	s.publishItemEvents(ctx, order.ID, added, skipped)

	return order, nil
}

// AddItems appends keys to the caller's ACTIVE order. Keys already in the
// basket are reported, not failed: re-adding is a soft no-op.
func (s *orderService) AddItems(ctx context.Context, caller usecase.Caller, orderID uint64, keys []entity.ItemKey) (*entity.Order, error) {
	var order *entity.Order
	var added, skipped []entity.ItemKey

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()

		var err error
		order, err = s.ownedActiveOrder(ctx, orderRepo, caller.Address, orderID)
		if err != nil {
			return err
		}

		added, skipped, err = s.appendKeys(ctx, orderRepo, order, keys)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishItemEvents(ctx, orderID, added, skipped)

	return order, nil
}

// CancelOrder transitions the caller's ACTIVE order to CANCELLED.
func (s *orderService) CancelOrder(ctx context.Context, caller usecase.Caller, orderID uint64) error {
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()

		order, err := s.ownedActiveOrder(ctx, orderRepo, caller.Address, orderID)
		if err != nil {
			return err
		}

		return orderRepo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:    constants.EventOrderCancelled,
		OrderID: orderID,
		Buyer:   caller.Address.String(),
	})

	return nil
}

// GetOrder returns an order with its items.
func (s *orderService) GetOrder(ctx context.Context, orderID uint64) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ActiveOrder returns the owner's current ACTIVE order, if any.
func (s *orderService) ActiveOrder(ctx context.Context, owner entity.Address) (*entity.Order, error) {
	order, err := s.orderRepo.FindActiveOrderByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	return order, nil
}

// GetPrice returns the live sum of the basket's current effective item
// prices, oracle conversion included.
func (s *orderService) GetPrice(ctx context.Context, orderID uint64) (decimal.Decimal, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		for _, key := range order.Items {
			price, err := s.settler.ItemPrice(ctx, f, key)
			if err != nil {
				if errors.Is(err, domainerrors.ErrItemNotFound) {
					return domainerrors.ErrItemNotFound.WithDetails("basket item " + key.String() + " is not priced")
				}

				return err
			}
			total = total.Add(price)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// Withdraw pays out overpayment surplus accrued by the aggregator account.
func (s *orderService) Withdraw(ctx context.Context, caller usecase.Caller, to entity.Address, amount decimal.Decimal) error {
	if !caller.HasRole(constants.RoleAdmin) {
		return domainerrors.ErrNotAuthorized.WithDetails("only an administrator may withdraw aggregator funds")
	}
	if to.IsZero() || !amount.IsPositive() {
		return domainerrors.ErrInvalidArgument.WithDetails("withdrawal needs a recipient and a positive amount")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()
		if err := accounts.Debit(ctx, s.ordersAddr, amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientBalance) {
				return domainerrors.ErrInsufficientBalance.WithDetails("amount exceeds aggregator balance")
			}

			return errors.Wrap(err, "failed to debit aggregator account")
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

// Settle implements service.SettlementTarget for basket purchases. The
// ledger has already credited the aggregator account with amount; the
// basket settles all-or-nothing against the items' current prices, and any
// overpayment surplus stays with the aggregator.
func (s *orderService) Settle(ctx context.Context, repos repository.RepositoryFactory, buyer entity.Address, reference string, amount decimal.Decimal) ([]*service.MarketEvent, error) {
	orderID, err := strconv.ParseUint(reference, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("order reference must be a numeric id")
	}

	orderRepo := repos.NewOrderRepository()
	order, err := orderRepo.FindOrderForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.Owner != buyer {
		// Another payer's order is indistinguishable from a missing one, so
		// ownership is never leaked to arbitrary callers.
		return nil, domainerrors.ErrOrderNotFound
	}
	if !order.IsActive() {
		return nil, domainerrors.ErrOrderNotActive
	}
	if len(order.Items) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("order is empty")
	}

	// Effective prices are read at settlement time, not at basket-build
	// time, so the total may differ from any earlier quote.
	prices := make([]decimal.Decimal, len(order.Items))
	total := decimal.Zero
	for i, key := range order.Items {
		price, err := s.settler.ItemPrice(ctx, repos, key)
		if err != nil {
			if errors.Is(err, domainerrors.ErrItemNotFound) {
				return nil, domainerrors.ErrNotForSale.WithDetails("basket item " + key.String() + " is not priced")
			}

			return nil, err
		}
		prices[i] = price
		total = total.Add(price)
	}
	if amount.LessThan(total) {
		return nil, domainerrors.ErrPriceMismatch.WithDetails("payment " + amount.String() + " is below basket total " + total.String())
	}

	// Mark the basket terminal before fanning out so a re-entrant payment
	// for the same order id cannot settle twice.
	if err := orderRepo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPurchased); err != nil {
		return nil, errors.Wrap(err, "failed to mark order purchased")
	}

	accounts := repos.NewAccountRepository()
	events := make([]*service.MarketEvent, 0, len(order.Items)+1)
	for i, key := range order.Items {
		// Each item is paid at its current price out of the aggregator's
		// freshly credited funds, through the marketplace account.
		if err := accounts.Debit(ctx, s.ordersAddr, prices[i]); err != nil {
			return nil, errors.Wrap(err, "failed to debit aggregator for basket item")
		}
		if err := accounts.Credit(ctx, s.marketAddr, prices[i]); err != nil {
			return nil, errors.Wrap(err, "failed to credit marketplace for basket item")
		}

		settlement, err := s.settler.SettleItem(ctx, repos, buyer, key, prices[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to settle basket item %s", key)
		}

		events = append(events, settlementEvent(settlement))
	}

	events = append(events, &service.MarketEvent{
		Type:    constants.EventOrderPurchased,
		OrderID: order.ID,
		Buyer:   buyer.String(),
		Amount:  amount.String(),
	})

	return events, nil
}

// ownedActiveOrder loads and locks an order and verifies it is the
// caller's and still mutable.
func (s *orderService) ownedActiveOrder(ctx context.Context, orderRepo repository.OrderRepository, caller entity.Address, orderID uint64) (*entity.Order, error) {
	order, err := orderRepo.FindOrderForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.Owner != caller {
		return nil, domainerrors.ErrNotAuthorized.WithDetails("only the order owner may modify it")
	}
	if !order.IsActive() {
		return nil, domainerrors.ErrOrderNotActive
	}

	return order, nil
}

// appendKeys appends each key not already in the basket and returns the
// keys actually added and the keys skipped as duplicates.
func (s *orderService) appendKeys(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order, keys []entity.ItemKey) (added, skipped []entity.ItemKey, err error) {
	for _, key := range keys {
		if key.IsZero() {
			return nil, nil, domainerrors.ErrInvalidArgument.WithDetails("item key must not be empty")
		}
		if order.Contains(key) {
			skipped = append(skipped, key)

			continue
		}

		if err := orderRepo.AppendItem(ctx, order.ID, key, len(order.Items)); err != nil {
			if errors.Is(err, repository.ErrDuplicateOrderItem) {
				skipped = append(skipped, key)

				continue
			}

			return nil, nil, errors.Wrap(err, "failed to append order item")
		}
		order.Items = append(order.Items, key)
		added = append(added, key)
	}

	return added, skipped, nil
}

// publishItemEvents emits one event per newly added key and a soft event
// per duplicate the basket already held.
func (s *orderService) publishItemEvents(ctx context.Context, orderID uint64, added, skipped []entity.ItemKey) {
	for _, key := range added {
		s.publish(ctx, &service.MarketEvent{
			Type:    constants.EventOrderItemAdded,
			OrderID: orderID,
			Store:   key.Store.String(),
			Version: key.Version,
		})
	}
	for _, key := range skipped {
		s.publish(ctx, &service.MarketEvent{
			Type:    constants.EventOrderItemExists,
			OrderID: orderID,
			Store:   key.Store.String(),
			Version: key.Version,
		})
	}
}

func (s *orderService) publish(ctx context.Context, event *service.MarketEvent) {
	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
