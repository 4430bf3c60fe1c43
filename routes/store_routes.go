package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/handlers"
)

// StoreRoutes covers the public storefront: catalog browsing, the cart
// and the checkout flow. None of it needs authentication.
func StoreRoutes(app *fiber.App, courses *handlers.CourseHandler, carts *handlers.CartHandler, orders *handlers.OrderHandler, payments *handlers.PaymentHandler) {
	api := app.Group("/api/v1")

	course := api.Group("/course")
	course.Get("/list", courses.List)
	course.Get("/best", courses.Best)
	course.Get("/search", courses.Search)
	course.Get("/category", courses.Categories)
	course.Get("/detail/:slug", courses.Detail)
	course.Get("/detail/:slug/reviews", courses.Reviews)

	cart := api.Group("/cart")
	cart.Post("", carts.Upsert)
	cart.Get("/:cart_id", carts.List)
	cart.Get("/:cart_id/stats", carts.Stats)
	cart.Delete("/:cart_id/:item_id", carts.Delete)

	order := api.Group("/order")
	order.Post("/create", orders.Create)
	order.Get("/checkout/:oid", orders.Get)
	order.Post("/coupon", orders.ApplyCoupon)

	payment := api.Group("/payment")
	payment.Post("/stripe-checkout", payments.CreateStripeCheckout)
	payment.Post("/confirm", payments.Confirm)
}
