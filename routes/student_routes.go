package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/handlers"
	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
)

func StudentRoutes(app *fiber.App, students *handlers.StudentHandler, community *handlers.CommunityHandler) {
	api := app.Group("/api/v1")

	student := api.Group("/student", middleware.Protected())
	student.Get("/summary", students.Summary)
	student.Get("/courses", students.Enrollments)
	student.Get("/courses/:enrollment_id", students.EnrollmentDetail)
	student.Post("/lesson/toggle", students.ToggleCompletedLesson)

	student.Get("/notes/:course_id", students.Notes)
	student.Post("/notes/:course_id", students.CreateNote)
	student.Put("/notes/detail/:note_id", students.UpdateNote)
	student.Delete("/notes/detail/:note_id", students.DeleteNote)

	student.Post("/review/:course_id", students.RateCourse)
	student.Put("/review/detail/:review_id", students.UpdateReview)

	student.Post("/wishlist/:course_id", students.ToggleWishlist)
	student.Get("/wishlist", students.Wishlist)

	qa := api.Group("/qa")
	qa.Get("/:course_id", community.Questions)
	qa.Post("/:course_id", middleware.Protected(), community.AskQuestion)
	qa.Post("/message/:qa_id", middleware.Protected(), community.PostMessage)

	app.Get("/ws/qa/:qa_id", community.Live())
}
