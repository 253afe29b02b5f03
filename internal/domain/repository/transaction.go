// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// Every settlement operation goes through Execute: if the callback returns
// an error the transaction is rolled back and none of its effects (debits,
// credits, purchase flags, receipts) are visible afterwards. This is the
// all-or-nothing boundary of the engine.
type TransactionManager interface {
	// Execute runs fn within a transaction. Repositories obtained from the
	// factory share that single transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewReceiptRepository returns a ReceiptRepository bound to the current transaction.
	NewReceiptRepository() ReceiptRepository

	// NewStoreRepository returns a StoreRepository bound to the current transaction.
	NewStoreRepository() StoreRepository

	// NewItemRepository returns an ItemRepository bound to the current transaction.
	NewItemRepository() ItemRepository

	// NewSellerBalanceRepository returns a SellerBalanceRepository bound to the current transaction.
	NewSellerBalanceRepository() SellerBalanceRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewRegistryRepository returns a RegistryRepository bound to the current transaction.
	NewRegistryRepository() RegistryRepository

	// NewBurnRepository returns a BurnRepository bound to the current transaction.
	NewBurnRepository() BurnRepository
}
