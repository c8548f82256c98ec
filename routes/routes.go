package routes

import (
	"ticketcounter/auth"
	"ticketcounter/bookings"
	"ticketcounter/db"
	"ticketcounter/events"
	"ticketcounter/middleware"
	"ticketcounter/pay"
	"ticketcounter/ratelim"
	"ticketcounter/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/jwt", rl.Limit(auth.IssueToken))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, store *db.Store) {
	h := users.NewHandler(store.Users)
	router.POST("/users", rl.Limit(h.CreateUser))
	router.GET("/users", h.GetUser)
}

func AddEventRoutes(router *httprouter.Router, store *db.Store) {
	h := events.NewHandler(store.Events)
	router.POST("/events", middleware.Authenticate(h.CreateEvent))
	router.GET("/events", h.GetEvents)
	router.GET("/events/:id", h.GetEvent)
	router.PUT("/events/:id", h.UpdateEvent)
	router.DELETE("/events/:id", middleware.Authenticate(h.DeleteEvent))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, store *db.Store) {
	h := bookings.NewHandler(store.Bookings)
	router.POST("/bookings", rl.Limit(h.CreateBooking))
	router.GET("/bookings", middleware.Authenticate(h.GetBookings))
}

func AddPayRoutes(router *httprouter.Router, store *db.Store, processor pay.IntentCreator) {
	svc := pay.NewPaymentService(store.Payments, store.Bookings, processor)
	router.POST("/create-payment-intent", svc.CreatePaymentIntent)
	router.POST("/payments", svc.RecordPayment)
}
