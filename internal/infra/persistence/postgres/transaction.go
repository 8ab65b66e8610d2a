package postgres

import (
	"context"
	"fmt"

	"romaneio/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds one GORM transaction object and hands out repository instances
// bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// ClientRepo returns a ClientRepository bound to the transaction.
func (f *gormRepositoryFactory) ClientRepo() repository.ClientRepository {
	return NewClientRepository(f.tx)
}

// AddressRepo returns an AddressRepository bound to the transaction.
func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

// DeliveryRepo returns a DeliveryRepository bound to the transaction.
func (f *gormRepositoryFactory) DeliveryRepo() repository.DeliveryRepository {
	return NewDeliveryRepository(f.tx)
}

// CourierPaymentRepo returns a CourierPaymentRepository bound to the transaction.
func (f *gormRepositoryFactory) CourierPaymentRepo() repository.CourierPaymentRepository {
	return NewCourierPaymentRepository(f.tx)
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

	// A panic inside the callback must still roll the transaction back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
