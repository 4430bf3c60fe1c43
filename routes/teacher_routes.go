package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/handlers"
	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
)

func TeacherRoutes(app *fiber.App, teachers *handlers.TeacherHandler) {
	api := app.Group("/api/v1")

	teacher := api.Group("/teacher", middleware.Protected(), middleware.TeacherRequired())
	teacher.Get("/summary", teachers.Summary)
	teacher.Get("/courses", teachers.Courses)
	teacher.Post("/courses", teachers.CreateCourse)
	teacher.Put("/courses/:course_id", teachers.UpdateCourse)

	teacher.Get("/orders", teachers.Orders)
	teacher.Get("/students", teachers.Students)

	teacher.Get("/coupons", teachers.Coupons)
	teacher.Post("/coupons", teachers.CreateCoupon)
	teacher.Get("/coupons/:coupon_id", teachers.Coupon)
	teacher.Put("/coupons/:coupon_id", teachers.UpdateCoupon)
	teacher.Delete("/coupons/:coupon_id", teachers.DeleteCoupon)

	teacher.Get("/notifications", teachers.Notifications)
	teacher.Put("/notifications/:notification_id/seen", teachers.MarkNotificationSeen)

	teacher.Get("/reviews", teachers.Reviews)
	teacher.Put("/reviews/:review_id/reply", teachers.ReplyToReview)

	teacher.Get("/questions", teachers.Questions)
}
