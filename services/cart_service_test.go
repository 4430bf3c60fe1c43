package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

func seedCourse(store *fakeStore, teacherID uuid.UUID) *models.Course {
	course := &models.Course{
		ID:        uuid.New(),
		TeacherID: teacherID,
		Title:     "Go From Scratch",
		Price:     decimal.RequireFromString("100"),
		Teacher:   models.Teacher{ID: teacherID},
	}
	store.courses = append(store.courses, course)
	return course
}

func TestCartUpsertCreatesLine(t *testing.T) {
	store := newFakeStore()
	store.countries = append(store.countries, &models.Country{
		ID: uuid.New(), Name: "Argentina", TaxRate: decimal.RequireFromString("21"),
	})
	course := seedCourse(store, uuid.New())
	svc := NewCartService(store)

	line, created, err := svc.Upsert(context.Background(), UpsertCartInput{
		CartID:   "session-1",
		CourseID: course.ID,
		Price:    decimal.RequireFromString("100"),
		Country:  "Argentina",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "Argentina", line.Country)
	require.True(t, line.TaxFee.Equal(decimal.RequireFromString("21")), "tax fee = %s", line.TaxFee)
	require.True(t, line.Total.Equal(decimal.RequireFromString("121")), "total = %s", line.Total)
	require.Equal(t, course.ID, line.Course.ID, "the response line carries the resolved course")
	require.Equal(t, course.Title, line.Course.Title)
	require.Len(t, store.carts, 1)
}

func TestCartUpsertOverwritesExistingLine(t *testing.T) {
	store := newFakeStore()
	course := seedCourse(store, uuid.New())
	svc := NewCartService(store)

	_, created, err := svc.Upsert(context.Background(), UpsertCartInput{
		CartID:   "session-1",
		CourseID: course.ID,
		Price:    decimal.RequireFromString("100"),
		Country:  "USA",
	})
	require.NoError(t, err)
	require.True(t, created)

	line, created, err := svc.Upsert(context.Background(), UpsertCartInput{
		CartID:   "session-1",
		CourseID: course.ID,
		Price:    decimal.RequireFromString("80"),
		Country:  "USA",
	})
	require.NoError(t, err)
	require.False(t, created)
	require.True(t, line.Price.Equal(decimal.RequireFromString("80")))
	require.Equal(t, course.ID, line.Course.ID, "the response line carries the resolved course")
	require.Len(t, store.carts, 1, "upsert must not duplicate the (cart, course) line")
}

func TestCartUpsertUnknownCountryFallsBack(t *testing.T) {
	store := newFakeStore()
	course := seedCourse(store, uuid.New())
	svc := NewCartService(store)

	line, _, err := svc.Upsert(context.Background(), UpsertCartInput{
		CartID:   "session-1",
		CourseID: course.ID,
		Price:    decimal.RequireFromString("50"),
		Country:  "Atlantis",
	})
	require.NoError(t, err)
	require.Equal(t, DefaultCountry, line.Country)
	require.True(t, line.TaxFee.IsZero())
	require.True(t, line.Total.Equal(decimal.RequireFromString("50")))
}

func TestCartUpsertUnknownCourse(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)

	_, _, err := svc.Upsert(context.Background(), UpsertCartInput{
		CartID:   "session-1",
		CourseID: uuid.New(),
		Price:    decimal.RequireFromString("10"),
	})
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCartStatsRoundsOnceAtTheEnd(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 3; i++ {
		store.carts = append(store.carts, &models.Cart{
			ID:     uuid.New(),
			CartID: "session-1",
			Price:  decimal.RequireFromString("33.333"),
			TaxFee: decimal.Zero,
			Total:  decimal.RequireFromString("33.333"),
		})
	}
	svc := NewCartService(store)

	stats, err := svc.Stats(context.Background(), "session-1")
	require.NoError(t, err)

	// 3 x 33.333 = 99.999 rounds to 100.00; summing pre-rounded lines
	// would give 99.99.
	require.True(t, stats.Total.Equal(decimal.RequireFromString("100")), "total = %s", stats.Total)
	require.True(t, stats.Price.Equal(decimal.RequireFromString("99.999")))
}

func TestCartDeleteUnknownLine(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)

	err := svc.Delete(context.Background(), "session-1", uuid.New())
	require.ErrorIs(t, err, ErrCartItemNotFound)
}
