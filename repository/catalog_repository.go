package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type CatalogRepository interface {
	ListPublishedCourses(ctx context.Context) ([]models.Course, error)
	BestRatedCourses(ctx context.Context, limit int) ([]models.Course, error)
	SearchCourses(ctx context.Context, query string) ([]models.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetCourseByPublicID(ctx context.Context, courseID string) (*models.Course, error)
	ListCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	SaveCourse(ctx context.Context, course *models.Course) error

	GetVariant(ctx context.Context, id uuid.UUID, courseID uuid.UUID) (*models.Variant, error)
	CreateVariant(ctx context.Context, variant *models.Variant) error
	SaveVariant(ctx context.Context, variant *models.Variant) error
	GetVariantItemByPublicID(ctx context.Context, variantItemID string) (*models.VariantItem, error)
	CreateVariantItem(ctx context.Context, item *models.VariantItem) error
	SaveVariantItem(ctx context.Context, item *models.VariantItem) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)
}

type gormCatalogRepository struct {
	db *gorm.DB
}

func (r *gormCatalogRepository) publishedScope() *gorm.DB {
	return r.db.Where("platform_status = ? AND teacher_course_status = ?",
		models.CourseStatusPublished, models.CourseStatusPublished)
}

func (r *gormCatalogRepository) ListPublishedCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.publishedScope().WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Preload("Variants.Items").
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *gormCatalogRepository) BestRatedCourses(ctx context.Context, limit int) ([]models.Course, error) {
	var courses []models.Course
	err := r.publishedScope().WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Joins("LEFT JOIN reviews ON reviews.course_id = courses.id AND reviews.active = true").
		Group("courses.id").
		Order("COALESCE(AVG(reviews.rating), 0) DESC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

func (r *gormCatalogRepository) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	var courses []models.Course
	err := r.publishedScope().WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Where("title ILIKE ?", "%"+query+"%").
		Find(&courses).Error
	return courses, err
}

func (r *gormCatalogRepository) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	err := r.publishedScope().WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Preload("Variants.Items").
		First(&course, "slug = ?", slug).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &course, nil
}

func (r *gormCatalogRepository) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Preload("Teacher").First(&course, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &course, nil
}

func (r *gormCatalogRepository) GetCourseByPublicID(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Preload("Teacher").First(&course, "course_id = ?", courseID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &course, nil
}

func (r *gormCatalogRepository) ListCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants.Items").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *gormCatalogRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *gormCatalogRepository) SaveCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *gormCatalogRepository) GetVariant(ctx context.Context, id uuid.UUID, courseID uuid.UUID) (*models.Variant, error) {
	var variant models.Variant
	err := r.db.WithContext(ctx).Preload("Items").
		First(&variant, "id = ? AND course_id = ?", id, courseID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &variant, nil
}

func (r *gormCatalogRepository) CreateVariant(ctx context.Context, variant *models.Variant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *gormCatalogRepository) SaveVariant(ctx context.Context, variant *models.Variant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

func (r *gormCatalogRepository) GetVariantItemByPublicID(ctx context.Context, variantItemID string) (*models.VariantItem, error) {
	var item models.VariantItem
	err := r.db.WithContext(ctx).First(&item, "variant_item_id = ?", variantItemID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (r *gormCatalogRepository) CreateVariantItem(ctx context.Context, item *models.VariantItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormCatalogRepository) SaveVariantItem(ctx context.Context, item *models.VariantItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *gormCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("title").Find(&categories).Error
	return categories, err
}

func (r *gormCatalogRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &category, nil
}

func (r *gormCatalogRepository) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).First(&country, "name = ?", name).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &country, nil
}
