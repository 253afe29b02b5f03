package impl

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"datadex/internal/domain/constants"
	"datadex/internal/domain/entity"
	domainerrors "datadex/internal/domain/errors"
	"datadex/internal/domain/repository"
	"datadex/internal/domain/service"
	"datadex/internal/usecase"
)

type registryService struct {
	registry  repository.RegistryRepository
	storeRepo repository.StoreRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// RegistryServiceParams holds dependencies for RegistryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	Registry  repository.RegistryRepository
	StoreRepo repository.StoreRepository
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRegistryService creates the administrative registry service.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		registry:  params.Registry,
		storeRepo: params.StoreRepo,
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// SetPercentage updates a revenue-split slot.
func (s *registryService) SetPercentage(ctx context.Context, caller usecase.Caller, slot int, value int) error {
	if !caller.HasRole(constants.RoleAdmin) {
		return domainerrors.ErrNotAuthorized.WithDetails("only an administrator may change split percentages")
	}
	if value < 0 || value > 100 {
		return domainerrors.ErrInvalidArgument.WithDetails("percentage must be within [0, 100]")
	}

	var oldValue int
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		registry := f.NewRegistryRepository()

		split, err := registry.FindSplit(ctx, slot)
		if err != nil {
			if errors.Is(err, repository.ErrSplitSlotNotFound) {
				return domainerrors.ErrInvalidArgument.WithDetails("unknown split slot " + strconv.Itoa(slot))
			}

			return errors.Wrap(err, "failed to load split slot")
		}
		oldValue = split.Percentage

		return registry.SaveSplit(ctx, slot, value)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:      constants.EventPercentageChanged,
		By:        caller.Address.String(),
		Reference: strconv.Itoa(slot),
		OldValue:  strconv.Itoa(oldValue),
		NewValue:  strconv.Itoa(value),
	})

	return nil
}

// GetPercentage returns the percentage for a known slot.
func (s *registryService) GetPercentage(ctx context.Context, slot int) (int, error) {
	split, err := s.registry.FindSplit(ctx, slot)
	if err != nil {
		if errors.Is(err, repository.ErrSplitSlotNotFound) {
			return 0, domainerrors.ErrInvalidArgument.WithDetails("unknown split slot " + strconv.Itoa(slot))
		}

		return 0, errors.Wrap(err, "failed to load split slot")
	}

	return split.Percentage, nil
}

// SetRate updates the exchange rate consumed by oracle-priced items.
func (s *registryService) SetRate(ctx context.Context, caller usecase.Caller, rate int64) error {
	if !caller.HasRole(constants.RoleAdmin) {
		return domainerrors.ErrNotAuthorized.WithDetails("only an administrator may change the exchange rate")
	}
	if rate <= 0 {
		return domainerrors.ErrInvalidArgument.WithDetails("rate must be positive")
	}

	var oldRate int64
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		registry := f.NewRegistryRepository()

		current, err := registry.FindRate(ctx)
		if err != nil && !errors.Is(err, repository.ErrRateNotFound) {
			return errors.Wrap(err, "failed to load exchange rate")
		}
		if current != nil {
			oldRate = current.Rate
		}

		return registry.SaveRate(ctx, rate)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:     constants.EventRateChanged,
		By:       caller.Address.String(),
		OldValue: strconv.FormatInt(oldRate, 10),
		NewValue: strconv.FormatInt(rate, 10),
	})

	return nil
}

// GetRate returns the current exchange rate.
func (s *registryService) GetRate(ctx context.Context) (int64, error) {
	rate, err := s.registry.FindRate(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return 0, domainerrors.ErrRateUnset
		}

		return 0, errors.Wrap(err, "failed to load exchange rate")
	}

	return rate.Rate, nil
}

// RegisterStore registers a store with its owner and facilitator addresses.
func (s *registryService) RegisterStore(ctx context.Context, caller usecase.Caller, store *entity.Store) error {
	if !caller.HasRole(constants.RoleAdmin) {
		return domainerrors.ErrNotAuthorized.WithDetails("only an administrator may register stores")
	}
	if store.Address.IsZero() || store.Owner.IsZero() || store.Location.IsZero() {
		return domainerrors.ErrInvalidArgument.WithDetails("store, owner and location addresses are all required")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewStoreRepository().CreateStore(ctx, store); err != nil {
			if errors.Is(err, repository.ErrDuplicateStore) {
				return domainerrors.ErrStoreAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create store")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:   constants.EventStoreRegistered,
		Store:  store.Address.String(),
		Seller: store.Owner.String(),
		By:     caller.Address.String(),
	})

	return nil
}

// GetStore returns a registered store.
func (s *registryService) GetStore(ctx context.Context, addr entity.Address) (*entity.Store, error) {
	store, err := s.storeRepo.FindStore(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

func (s *registryService) publish(ctx context.Context, event *service.MarketEvent) {
	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish registry event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
