// internal/repository/repository.go
package repository

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store bundles every repository behind its interface so the gate can hand a
// scoped query surface to callers and tests can swap in mocks.
type Store struct {
	Users         UserRepositoryIface
	Organizations OrganizationRepositoryIface
	Memberships   MembershipRepositoryIface
	Plans         PlanRepositoryIface
	Subscriptions SubscriptionRepositoryIface
	Customers     CustomerRepositoryIface
}

// NewStore wires gorm-backed repositories over one connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:         NewUserRepository(db),
		Organizations: NewOrganizationRepository(db),
		Memberships:   NewMembershipRepository(db),
		Plans:         NewPlanRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
		Customers:     NewCustomerRepository(db),
	}
}

// Transaction interface for handling DB transactions that span multiple
// repository writes.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation. gorm's postgres driver rides on pgx, so the driver error is a
// *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
