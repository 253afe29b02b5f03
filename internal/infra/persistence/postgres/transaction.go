// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"datadex/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction. Every
// settlement runs through one of these, so a hook failure unwinds the
// debit, the credit, the receipt and the hook's own writes together.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewAccountRepository creates an account repository bound to the transaction.
func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// NewReceiptRepository creates a receipt repository bound to the transaction.
func (f *gormRepositoryFactory) NewReceiptRepository() repository.ReceiptRepository {
	return NewReceiptRepository(f.tx)
}

// NewStoreRepository creates a store repository bound to the transaction.
func (f *gormRepositoryFactory) NewStoreRepository() repository.StoreRepository {
	return NewStoreRepository(f.tx)
}

// NewItemRepository creates an item repository bound to the transaction.
func (f *gormRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return NewItemRepository(f.tx)
}

// NewSellerBalanceRepository creates a seller balance repository bound to the transaction.
func (f *gormRepositoryFactory) NewSellerBalanceRepository() repository.SellerBalanceRepository {
	return NewSellerBalanceRepository(f.tx)
}

// NewOrderRepository creates an order repository bound to the transaction.
func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewRegistryRepository creates a registry repository bound to the transaction.
func (f *gormRepositoryFactory) NewRegistryRepository() repository.RegistryRepository {
	return NewRegistryRepository(f.tx)
}

// NewBurnRepository creates a burn repository bound to the transaction.
func (f *gormRepositoryFactory) NewBurnRepository() repository.BurnRepository {
	return NewBurnRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback
	// function, the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
