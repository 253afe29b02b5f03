package postgres

import (
	"context"
	"time"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder stores a new order and fills its generated id.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := model.OrderModel{
		Owner:  order.Owner.String(),
		Status: string(order.Status),
	}

	if err := repo.db.WithContext(ctx).Create(&orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrder retrieves an order with its items in insertion order.
func (repo *orderRepository) FindOrder(ctx context.Context, id uint64) (*entity.Order, error) {
	return repo.findOrder(ctx, repo.db.WithContext(ctx), id)
}

// FindOrderForUpdate retrieves an order with its items and locks the order
// row for the remainder of the transaction.
func (repo *orderRepository) FindOrderForUpdate(ctx context.Context, id uint64) (*entity.Order, error) {
	return repo.findOrder(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}}), id)
}

// FindActiveOrderByOwner returns the owner's ACTIVE order, if any.
func (repo *orderRepository) FindActiveOrderByOwner(ctx context.Context, owner entity.Address) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("owner = ? AND status = ?", owner.String(), string(entity.OrderStatusActive)).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	items, err := repo.loadItems(ctx, orderM.ID)
	if err != nil {
		return nil, err
	}

	return toOrderDomain(&orderM, items), nil
}

// AppendItem appends key at the given position.
func (repo *orderRepository) AppendItem(ctx context.Context, orderID uint64, key entity.ItemKey, position int) error {
	itemM := model.OrderItemModel{
		OrderID:  orderID,
		Store:    key.Store.String(),
		Version:  key.Version,
		Position: position,
	}

	if err := repo.db.WithContext(ctx).Create(&itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderItem
		}

		return errors.Wrap(err, "failed to append order item")
	}

	return nil
}

// UpdateOrderStatus transitions the order to the given status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uint64, status entity.OrderStatus) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

func (repo *orderRepository) findOrder(ctx context.Context, tx *gorm.DB, id uint64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := tx.Where("id = ?", id).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	items, err := repo.loadItems(ctx, orderM.ID)
	if err != nil {
		return nil, err
	}

	return toOrderDomain(&orderM, items), nil
}

func (repo *orderRepository) loadItems(ctx context.Context, orderID uint64) ([]model.OrderItemModel, error) {
	var itemMs []model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return itemMs, nil
}

// toOrderDomain maps the persistence models back to a pure domain entity.
func toOrderDomain(m *model.OrderModel, itemMs []model.OrderItemModel) *entity.Order {
	items := make([]entity.ItemKey, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, entity.ItemKey{Store: entity.Address(itemM.Store), Version: itemM.Version})
	}

	return &entity.Order{
		ID:        m.ID,
		Owner:     entity.Address(m.Owner),
		Status:    entity.OrderStatus(m.Status),
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
