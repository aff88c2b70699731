package routes

import (
	"net/http"

	"cancha/admin"
	"cancha/auth"
	"cancha/booking"
	"cancha/checkin"
	"cancha/courts"
	"cancha/filemgr"
	"cancha/middleware"
	"cancha/ratelim"
	"cancha/schedule"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/courtpic/*filepath", http.Dir("static/courtpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.Logout)
	router.POST("/api/auth/refresh", rl.Limit(auth.RefreshToken))
}

func AddCourtRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/courts", rl.Limit(courts.ListCourts))
	router.POST("/api/courts", middleware.Authenticate(middleware.RequireAdmin(courts.AddCourt)))
	router.PUT("/api/courts/:id", middleware.Authenticate(middleware.RequireAdmin(courts.UpdateCourt)))
	router.DELETE("/api/courts/:id", middleware.Authenticate(middleware.RequireAdmin(courts.RemoveCourt)))
}

func AddScheduleRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/timeslots", rl.Limit(schedule.ListTimeSlots))
	router.POST("/api/timeslots", middleware.Authenticate(middleware.RequireAdmin(schedule.AddTimeSlot)))
	router.DELETE("/api/timeslots", middleware.Authenticate(middleware.RequireAdmin(schedule.RemoveTimeSlot)))
	router.POST("/api/timeslots/generate", middleware.Authenticate(middleware.RequireAdmin(schedule.GenerateTimeSlots)))

	router.GET("/api/availability/:date/:court", rl.Limit(schedule.GetAvailability))
	router.GET("/api/availability/:date/:court/override", middleware.Authenticate(middleware.RequireAdmin(schedule.GetOverride)))
	router.PUT("/api/availability/:date/:court", middleware.Authenticate(middleware.RequireAdmin(schedule.SetAvailability)))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/booking/draft", rl.Limit(booking.SaveDraftHandler))
	router.GET("/api/booking/draft/:token", rl.Limit(booking.GetDraftHandler))
	router.POST("/api/reservations", rl.Limit(booking.CreateReservation))
	router.GET("/api/reservations/:id", rl.Limit(booking.GetReservation))
}

func AddCheckinRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/checkin", middleware.Authenticate(middleware.RequireAdmin(checkin.Scan)))
	router.GET("/api/reservations/:id/qr", rl.Limit(checkin.QRImage))
	router.GET("/api/reservations/:id/ticket", rl.Limit(checkin.PrintTicket))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/reservations", middleware.Authenticate(middleware.RequireAdmin(admin.ListReservations)))
	router.PUT("/api/admin/reservations/:id/status", middleware.Authenticate(middleware.RequireAdmin(admin.UpdateReservationStatus)))
	router.DELETE("/api/admin/reservations/:id", middleware.Authenticate(middleware.RequireAdmin(admin.DeleteReservation)))
}

func AddUploadRoutes(router *httprouter.Router) {
	router.POST("/api/upload", middleware.Authenticate(middleware.RequireAdmin(filemgr.UploadCourtImage)))
}

func AddWSRoutes(router *httprouter.Router) {
	router.GET("/ws/updates", booking.HandleWS)
	router.GET("/ws/updates/:court", booking.HandleWS)
}
