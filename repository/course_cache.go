package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

const (
	courseListKey = "courses:published"
	courseListTTL = 5 * time.Minute
)

// CourseCache is a read-through cache in front of the published-course
// listing, the hottest query on the storefront.
type CourseCache interface {
	Get(ctx context.Context) ([]models.Course, bool)
	Set(ctx context.Context, courses []models.Course)
	Invalidate(ctx context.Context)
}

type redisCourseCache struct {
	client *redis.Client
}

// NewCourseCache connects to Redis at addr. An empty addr disables
// caching entirely; callers get a no-op cache and every read hits the
// database.
func NewCourseCache(addr, password string) CourseCache {
	if addr == "" {
		log.Println("⚠️ Redis not configured, course cache disabled.")
		return noopCourseCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &redisCourseCache{client: client}
}

func (c *redisCourseCache) Get(ctx context.Context) ([]models.Course, bool) {
	data, err := c.client.Get(ctx, courseListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("Course cache get error: %v", err)
		return nil, false
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		log.Printf("Course cache decode error: %v", err)
		return nil, false
	}
	return courses, true
}

func (c *redisCourseCache) Set(ctx context.Context, courses []models.Course) {
	data, err := json.Marshal(courses)
	if err != nil {
		log.Printf("Course cache encode error: %v", err)
		return
	}
	if err := c.client.Set(ctx, courseListKey, data, courseListTTL).Err(); err != nil {
		log.Printf("Course cache set error: %v", err)
	}
}

func (c *redisCourseCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, courseListKey).Err(); err != nil {
		log.Printf("Course cache invalidate error: %v", err)
	}
}

type noopCourseCache struct{}

func (noopCourseCache) Get(context.Context) ([]models.Course, bool) { return nil, false }
func (noopCourseCache) Set(context.Context, []models.Course)       {}
func (noopCourseCache) Invalidate(context.Context)                 {}
