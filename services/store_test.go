package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

// fakeStore is an in-memory Store for exercising service flows without
// a database. Only the methods the flows under test reach are
// implemented; the rest panic so an unexpected call fails loudly.
type fakeStore struct {
	users         []*models.User
	teachers      []*models.Teacher
	courses       []*models.Course
	countries     []*models.Country
	carts         []*models.Cart
	orders        []*models.CartOrder
	items         []*models.CartOrderItem
	coupons       []*models.Coupon
	notifications []*models.Notification
	enrollments   []*models.EnrolledCourse

	itemCoupons map[uuid.UUID][]uuid.UUID
	redeemers   map[uuid.UUID][]uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		itemCoupons: make(map[uuid.UUID][]uuid.UUID),
		redeemers:   make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *fakeStore) Atomic(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *fakeStore) Users() repository.UserRepository                 { return &fakeUsers{s} }
func (s *fakeStore) Catalog() repository.CatalogRepository            { return &fakeCatalog{s} }
func (s *fakeStore) Carts() repository.CartRepository                 { return &fakeCarts{s} }
func (s *fakeStore) Orders() repository.OrderRepository               { return &fakeOrders{s} }
func (s *fakeStore) Coupons() repository.CouponRepository             { return &fakeCoupons{s} }
func (s *fakeStore) Enrollments() repository.EnrollmentRepository     { return &fakeEnrollments{s} }
func (s *fakeStore) Notifications() repository.NotificationRepository { return &fakeNotifications{s} }
func (s *fakeStore) Reviews() repository.ReviewRepository             { panic("reviews not faked") }
func (s *fakeStore) Community() repository.CommunityRepository       { panic("community not faked") }
func (s *fakeStore) Student() repository.StudentRepository           { panic("student not faked") }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

type fakeUsers struct{ s *fakeStore }

func (r *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUsers) Create(_ context.Context, user *models.User) error {
	ensureID(&user.ID)
	r.s.users = append(r.s.users, user)
	return nil
}

func (r *fakeUsers) CreateProfile(_ context.Context, profile *models.Profile) error {
	ensureID(&profile.ID)
	return nil
}

func (r *fakeUsers) SaveProfile(context.Context, *models.Profile) error { return nil }

func (r *fakeUsers) GetTeacherByID(_ context.Context, id uuid.UUID) (*models.Teacher, error) {
	for _, t := range r.s.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUsers) GetTeacherByUserID(_ context.Context, userID uuid.UUID) (*models.Teacher, error) {
	for _, t := range r.s.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCatalog struct{ s *fakeStore }

func (r *fakeCatalog) ListPublishedCourses(context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range r.s.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCatalog) BestRatedCourses(context.Context, int) ([]models.Course, error) {
	panic("not faked")
}

func (r *fakeCatalog) SearchCourses(context.Context, string) ([]models.Course, error) {
	panic("not faked")
}

func (r *fakeCatalog) GetCourseBySlug(context.Context, string) (*models.Course, error) {
	panic("not faked")
}

func (r *fakeCatalog) GetCourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for _, c := range r.s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCatalog) GetCourseByPublicID(context.Context, string) (*models.Course, error) {
	panic("not faked")
}

func (r *fakeCatalog) ListCoursesByTeacher(context.Context, uuid.UUID) ([]models.Course, error) {
	panic("not faked")
}

func (r *fakeCatalog) CreateCourse(_ context.Context, course *models.Course) error {
	ensureID(&course.ID)
	r.s.courses = append(r.s.courses, course)
	return nil
}

func (r *fakeCatalog) SaveCourse(context.Context, *models.Course) error { return nil }

func (r *fakeCatalog) GetVariant(context.Context, uuid.UUID, uuid.UUID) (*models.Variant, error) {
	panic("not faked")
}

func (r *fakeCatalog) CreateVariant(_ context.Context, variant *models.Variant) error {
	ensureID(&variant.ID)
	return nil
}

func (r *fakeCatalog) SaveVariant(context.Context, *models.Variant) error { return nil }

func (r *fakeCatalog) GetVariantItemByPublicID(context.Context, string) (*models.VariantItem, error) {
	panic("not faked")
}

func (r *fakeCatalog) CreateVariantItem(_ context.Context, item *models.VariantItem) error {
	ensureID(&item.ID)
	return nil
}

func (r *fakeCatalog) SaveVariantItem(context.Context, *models.VariantItem) error { return nil }

func (r *fakeCatalog) ListCategories(context.Context) ([]models.Category, error) {
	panic("not faked")
}

func (r *fakeCatalog) GetCategoryByID(context.Context, uuid.UUID) (*models.Category, error) {
	panic("not faked")
}

func (r *fakeCatalog) GetCountryByName(_ context.Context, name string) (*models.Country, error) {
	for _, c := range r.s.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCarts struct{ s *fakeStore }

// resolveCourse mimics the GORM repo's Course and Course.Teacher
// preloads so consumers see the same shape they get from Postgres.
func (r *fakeCarts) resolveCourse(line *models.Cart) {
	for _, c := range r.s.courses {
		if c.ID == line.CourseID {
			line.Course = *c
			if line.Course.Teacher.ID == uuid.Nil {
				line.Course.Teacher = models.Teacher{ID: c.TeacherID}
			}
			return
		}
	}
}

func (r *fakeCarts) FindLine(_ context.Context, cartID string, courseID uuid.UUID) (*models.Cart, error) {
	for _, line := range r.s.carts {
		if line.CartID == cartID && line.CourseID == courseID {
			r.resolveCourse(line)
			return line, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCarts) ListLines(_ context.Context, cartID string) ([]models.Cart, error) {
	var out []models.Cart
	for _, line := range r.s.carts {
		if line.CartID == cartID {
			resolved := *line
			r.resolveCourse(&resolved)
			out = append(out, resolved)
		}
	}
	return out, nil
}

func (r *fakeCarts) Create(_ context.Context, line *models.Cart) error {
	ensureID(&line.ID)
	r.s.carts = append(r.s.carts, line)
	return nil
}

func (r *fakeCarts) Save(context.Context, *models.Cart) error { return nil }

func (r *fakeCarts) Delete(_ context.Context, cartID string, itemID uuid.UUID) error {
	for i, line := range r.s.carts {
		if line.CartID == cartID && line.ID == itemID {
			r.s.carts = append(r.s.carts[:i], r.s.carts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeCarts) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []*models.Cart
	var purged int64
	for _, line := range r.s.carts {
		if line.CreatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, line)
	}
	r.s.carts = kept
	return purged, nil
}

type fakeOrders struct{ s *fakeStore }

func (r *fakeOrders) Create(_ context.Context, order *models.CartOrder) error {
	ensureID(&order.ID)
	r.s.orders = append(r.s.orders, order)
	return nil
}

func (r *fakeOrders) Save(context.Context, *models.CartOrder) error { return nil }

func (r *fakeOrders) GetByOID(_ context.Context, oid string) (*models.CartOrder, error) {
	for _, o := range r.s.orders {
		if o.OID == oid {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeOrders) CreateItem(_ context.Context, item *models.CartOrderItem) error {
	ensureID(&item.ID)
	r.s.items = append(r.s.items, item)
	return nil
}

func (r *fakeOrders) SaveItem(context.Context, *models.CartOrderItem) error { return nil }

func (r *fakeOrders) ListItems(_ context.Context, orderID uuid.UUID) ([]models.CartOrderItem, error) {
	var out []models.CartOrderItem
	for _, item := range r.s.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeOrders) ListItemsByTeacher(_ context.Context, orderID, teacherID uuid.UUID) ([]models.CartOrderItem, error) {
	var out []models.CartOrderItem
	for _, item := range r.s.items {
		if item.OrderID == orderID && item.TeacherID == teacherID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeOrders) ListItemsSoldByTeacher(context.Context, uuid.UUID) ([]models.CartOrderItem, error) {
	panic("not faked")
}

func (r *fakeOrders) AttachTeacher(context.Context, *models.CartOrder, *models.Teacher) error {
	return nil
}

func (r *fakeOrders) AttachCoupon(context.Context, *models.CartOrder, *models.Coupon) error {
	return nil
}

func (r *fakeOrders) AttachItemCoupon(_ context.Context, item *models.CartOrderItem, coupon *models.Coupon) error {
	r.s.itemCoupons[item.ID] = append(r.s.itemCoupons[item.ID], coupon.ID)
	for _, stored := range r.s.items {
		if stored.ID == item.ID {
			*stored = *item
		}
	}
	return nil
}

func (r *fakeOrders) ItemHasCoupon(_ context.Context, itemID, couponID uuid.UUID) (bool, error) {
	for _, id := range r.s.itemCoupons[itemID] {
		if id == couponID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrders) MarkPaid(_ context.Context, orderID uuid.UUID) (bool, error) {
	for _, o := range r.s.orders {
		if o.ID == orderID && o.PaymentStatus == models.PaymentStatusProcessing {
			o.PaymentStatus = models.PaymentStatusPaid
			return true, nil
		}
	}
	return false, nil
}

type fakeCoupons struct{ s *fakeStore }

func (r *fakeCoupons) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	for _, c := range r.s.coupons {
		if c.Code == code && c.Active {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCoupons) GetByID(context.Context, uuid.UUID, uuid.UUID) (*models.Coupon, error) {
	panic("not faked")
}

func (r *fakeCoupons) ListByTeacher(context.Context, uuid.UUID) ([]models.Coupon, error) {
	panic("not faked")
}

func (r *fakeCoupons) Create(_ context.Context, coupon *models.Coupon) error {
	ensureID(&coupon.ID)
	r.s.coupons = append(r.s.coupons, coupon)
	return nil
}

func (r *fakeCoupons) Save(context.Context, *models.Coupon) error { return nil }

func (r *fakeCoupons) Delete(context.Context, uuid.UUID, uuid.UUID) error { panic("not faked") }

func (r *fakeCoupons) AddRedeemer(_ context.Context, coupon *models.Coupon, user *models.User) error {
	r.s.redeemers[coupon.ID] = append(r.s.redeemers[coupon.ID], user.ID)
	return nil
}

type fakeEnrollments struct{ s *fakeStore }

func (r *fakeEnrollments) Create(_ context.Context, enrollment *models.EnrolledCourse) error {
	ensureID(&enrollment.ID)
	r.s.enrollments = append(r.s.enrollments, enrollment)
	return nil
}

func (r *fakeEnrollments) ListByUser(context.Context, uuid.UUID) ([]models.EnrolledCourse, error) {
	panic("not faked")
}

func (r *fakeEnrollments) ListByTeacher(context.Context, uuid.UUID) ([]models.EnrolledCourse, error) {
	panic("not faked")
}

func (r *fakeEnrollments) GetByEnrollmentID(context.Context, string, uuid.UUID) (*models.EnrolledCourse, error) {
	panic("not faked")
}

func (r *fakeEnrollments) CountByUser(context.Context, uuid.UUID) (int64, error) {
	panic("not faked")
}

func (r *fakeEnrollments) FindCompletedLesson(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*models.CompletedLesson, error) {
	panic("not faked")
}

func (r *fakeEnrollments) CreateCompletedLesson(context.Context, *models.CompletedLesson) error {
	panic("not faked")
}

func (r *fakeEnrollments) DeleteCompletedLesson(context.Context, uuid.UUID) error {
	panic("not faked")
}

func (r *fakeEnrollments) CountCompletedLessonsByUser(context.Context, uuid.UUID) (int64, error) {
	panic("not faked")
}

type fakeNotifications struct{ s *fakeStore }

func (r *fakeNotifications) Create(_ context.Context, notification *models.Notification) error {
	ensureID(&notification.ID)
	r.s.notifications = append(r.s.notifications, notification)
	return nil
}

func (r *fakeNotifications) Save(context.Context, *models.Notification) error { return nil }

func (r *fakeNotifications) GetByID(context.Context, uuid.UUID) (*models.Notification, error) {
	panic("not faked")
}

func (r *fakeNotifications) ListByTeacher(context.Context, uuid.UUID) ([]models.Notification, error) {
	panic("not faked")
}

func (r *fakeNotifications) ListByUser(context.Context, uuid.UUID) ([]models.Notification, error) {
	panic("not faked")
}
