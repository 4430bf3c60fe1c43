package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.CartOrder) error
	Save(ctx context.Context, order *models.CartOrder) error
	GetByOID(ctx context.Context, oid string) (*models.CartOrder, error)
	CreateItem(ctx context.Context, item *models.CartOrderItem) error
	SaveItem(ctx context.Context, item *models.CartOrderItem) error
	ListItems(ctx context.Context, orderID uuid.UUID) ([]models.CartOrderItem, error)
	ListItemsByTeacher(ctx context.Context, orderID, teacherID uuid.UUID) ([]models.CartOrderItem, error)
	ListItemsSoldByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.CartOrderItem, error)
	AttachTeacher(ctx context.Context, order *models.CartOrder, teacher *models.Teacher) error
	AttachCoupon(ctx context.Context, order *models.CartOrder, coupon *models.Coupon) error
	AttachItemCoupon(ctx context.Context, item *models.CartOrderItem, coupon *models.Coupon) error
	ItemHasCoupon(ctx context.Context, itemID, couponID uuid.UUID) (bool, error)
	// MarkPaid flips payment_status from Processing to Paid with a
	// conditional update and reports whether this call made the
	// transition. Concurrent webhook deliveries get false.
	MarkPaid(ctx context.Context, orderID uuid.UUID) (bool, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func (r *gormOrderRepository) Create(ctx context.Context, order *models.CartOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) Save(ctx context.Context, order *models.CartOrder) error {
	return r.db.WithContext(ctx).Omit("Items", "Coupons", "Teachers", "Student").Save(order).Error
}

func (r *gormOrderRepository) GetByOID(ctx context.Context, oid string) (*models.CartOrder, error) {
	var order models.CartOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Course").
		Preload("Items.Teacher").
		Preload("Coupons").
		Preload("Student").
		First(&order, "oid = ?", oid).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (r *gormOrderRepository) CreateItem(ctx context.Context, item *models.CartOrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormOrderRepository) SaveItem(ctx context.Context, item *models.CartOrderItem) error {
	return r.db.WithContext(ctx).Omit("Course", "Teacher", "Coupons").Save(item).Error
}

func (r *gormOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]models.CartOrderItem, error) {
	var items []models.CartOrderItem
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Teacher").
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&items).Error
	return items, err
}

func (r *gormOrderRepository) ListItemsByTeacher(ctx context.Context, orderID, teacherID uuid.UUID) ([]models.CartOrderItem, error) {
	var items []models.CartOrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND teacher_id = ?", orderID, teacherID).
		Order("created_at").
		Find(&items).Error
	return items, err
}

func (r *gormOrderRepository) ListItemsSoldByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.CartOrderItem, error) {
	var items []models.CartOrderItem
	err := r.db.WithContext(ctx).
		Preload("Course").
		Joins("JOIN cart_orders ON cart_orders.id = cart_order_items.order_id").
		Where("cart_order_items.teacher_id = ? AND cart_orders.payment_status = ?", teacherID, models.PaymentStatusPaid).
		Order("cart_order_items.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *gormOrderRepository) AttachTeacher(ctx context.Context, order *models.CartOrder, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Model(order).Association("Teachers").Append(teacher)
}

func (r *gormOrderRepository) AttachCoupon(ctx context.Context, order *models.CartOrder, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Model(order).Association("Coupons").Append(coupon)
}

func (r *gormOrderRepository) AttachItemCoupon(ctx context.Context, item *models.CartOrderItem, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Model(item).Association("Coupons").Append(coupon)
}

func (r *gormOrderRepository) ItemHasCoupon(ctx context.Context, itemID, couponID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("cart_order_item_coupons").
		Where("cart_order_item_id = ? AND coupon_id = ?", itemID, couponID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormOrderRepository) MarkPaid(ctx context.Context, orderID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartOrder{}).
		Where("id = ? AND payment_status = ?", orderID, models.PaymentStatusProcessing).
		Update("payment_status", models.PaymentStatusPaid)
	return res.RowsAffected > 0, res.Error
}
