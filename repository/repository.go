package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when the requested row
// does not exist. Services translate it into their own error kinds.
var ErrNotFound = errors.New("record not found")

// Store bundles the per-entity repositories behind a single handle so
// that a service can run several repository calls inside one database
// transaction via Atomic.
type Store interface {
	// Atomic runs fn inside a transaction. The Store passed to fn is
	// bound to that transaction; every repository obtained from it
	// reads and writes under the same tx.
	Atomic(ctx context.Context, fn func(Store) error) error

	Users() UserRepository
	Catalog() CatalogRepository
	Carts() CartRepository
	Orders() OrderRepository
	Coupons() CouponRepository
	Enrollments() EnrollmentRepository
	Notifications() NotificationRepository
	Reviews() ReviewRepository
	Community() CommunityRepository
	Student() StudentRepository
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a GORM handle in the Store interface.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Users() UserRepository                 { return &gormUserRepository{db: s.db} }
func (s *gormStore) Catalog() CatalogRepository            { return &gormCatalogRepository{db: s.db} }
func (s *gormStore) Carts() CartRepository                 { return &gormCartRepository{db: s.db} }
func (s *gormStore) Orders() OrderRepository               { return &gormOrderRepository{db: s.db} }
func (s *gormStore) Coupons() CouponRepository             { return &gormCouponRepository{db: s.db} }
func (s *gormStore) Enrollments() EnrollmentRepository     { return &gormEnrollmentRepository{db: s.db} }
func (s *gormStore) Notifications() NotificationRepository { return &gormNotificationRepository{db: s.db} }
func (s *gormStore) Reviews() ReviewRepository             { return &gormReviewRepository{db: s.db} }
func (s *gormStore) Community() CommunityRepository        { return &gormCommunityRepository{db: s.db} }
func (s *gormStore) Student() StudentRepository            { return &gormStudentRepository{db: s.db} }

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
