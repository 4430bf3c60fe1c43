package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
	"github.com/Juantrevi/Backend-Learning-Management-System/utils"
)

type CatalogService struct {
	store repository.Store
	cache repository.CourseCache
}

func NewCatalogService(store repository.Store, cache repository.CourseCache) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

// ListCourses returns the published catalog, served from the cache
// when a fresh copy is there.
func (s *CatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if courses, ok := s.cache.Get(ctx); ok {
		return courses, nil
	}
	courses, err := s.store.Catalog().ListPublishedCourses(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, courses)
	return courses, nil
}

func (s *CatalogService) BestCourses(ctx context.Context, limit int) ([]models.Course, error) {
	return s.store.Catalog().BestRatedCourses(ctx, limit)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Course, error) {
	return s.store.Catalog().SearchCourses(ctx, query)
}

func (s *CatalogService) CourseDetail(ctx context.Context, slug string) (*models.Course, error) {
	course, err := s.store.Catalog().GetCourseBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	return course, err
}

func (s *CatalogService) CourseReviews(ctx context.Context, slug string) ([]models.Review, error) {
	course, err := s.store.Catalog().GetCourseBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.store.Reviews().ListByCourse(ctx, course.ID)
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.Catalog().ListCategories(ctx)
}

// LectureInput is one lecture inside a curriculum section, submitted
// as part of the nested course payload.
type LectureInput struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
	Preview     bool    `json:"preview"`
}

// SectionInput is one curriculum section with its lectures.
type SectionInput struct {
	Title    string         `json:"title" validate:"required"`
	Lectures []LectureInput `json:"lectures" validate:"dive"`
}

type CourseInput struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	FileURL     *string         `json:"file_url"`
	Price       decimal.Decimal `json:"price"`
	Language    string          `json:"language"`
	Level       string          `json:"level"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Status      string          `json:"status"`
	Curriculum  []SectionInput  `json:"curriculum" validate:"dive"`
}

// CreateCourse writes a course and its full curriculum in one
// transaction and drops the catalog cache.
func (s *CatalogService) CreateCourse(ctx context.Context, teacherID uuid.UUID, in CourseInput) (*models.Course, error) {
	var course *models.Course
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		course = &models.Course{
			TeacherID:           teacherID,
			CategoryID:          in.CategoryID,
			Title:               in.Title,
			Description:         in.Description,
			ImageURL:            in.ImageURL,
			FileURL:             in.FileURL,
			Price:               in.Price,
			Language:            defaultString(in.Language, "English"),
			Level:               defaultString(in.Level, models.CourseLevelBeginner),
			TeacherCourseStatus: defaultString(in.Status, models.CourseStatusPublished),
			PlatformStatus:      models.CourseStatusPublished,
			CourseID:            utils.ShortID(6),
			Slug:                utils.Slugify(in.Title),
		}
		if err := tx.Catalog().CreateCourse(ctx, course); err != nil {
			return err
		}
		return s.writeCurriculum(ctx, tx, course.ID, in.Curriculum)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return course, nil
}

// UpdateCourse replaces the mutable fields of a teacher's course and
// appends any new curriculum sections.
func (s *CatalogService) UpdateCourse(ctx context.Context, teacherID uuid.UUID, courseID string, in CourseInput) (*models.Course, error) {
	var course *models.Course
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		var err error
		course, err = tx.Catalog().GetCourseByPublicID(ctx, courseID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		if err != nil {
			return err
		}
		if course.TeacherID != teacherID {
			return ErrCourseNotFound
		}

		course.Title = in.Title
		course.Description = in.Description
		if in.ImageURL != nil {
			course.ImageURL = in.ImageURL
		}
		if in.FileURL != nil {
			course.FileURL = in.FileURL
		}
		course.Price = in.Price
		course.Language = defaultString(in.Language, course.Language)
		course.Level = defaultString(in.Level, course.Level)
		course.CategoryID = in.CategoryID
		if in.Status != "" {
			course.TeacherCourseStatus = in.Status
		}
		if err := tx.Catalog().SaveCourse(ctx, course); err != nil {
			return err
		}
		return s.writeCurriculum(ctx, tx, course.ID, in.Curriculum)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return course, nil
}

func (s *CatalogService) writeCurriculum(ctx context.Context, tx repository.Store, courseID uuid.UUID, sections []SectionInput) error {
	for _, section := range sections {
		variant := &models.Variant{
			CourseID: courseID,
			Title:    section.Title,
		}
		if err := tx.Catalog().CreateVariant(ctx, variant); err != nil {
			return err
		}
		for _, lecture := range section.Lectures {
			item := &models.VariantItem{
				VariantID:     variant.ID,
				VariantItemID: utils.ShortID(6),
				Title:         lecture.Title,
				Description:   lecture.Description,
				FileURL:       lecture.FileURL,
				Preview:       lecture.Preview,
			}
			if err := tx.Catalog().CreateVariantItem(ctx, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
