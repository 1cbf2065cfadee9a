package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smartcare/smartcare-api/internal/middleware"
)

// RegisterRoutes wires all routes onto the engine. Registration, login,
// refresh, the provider directory, and the insurance catalog reads are
// public; everything else requires a bearer access token.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", h.RegisterUser)
		users.POST("/login", h.Login)
		users.POST("/refresh", h.RefreshToken)
		users.GET("/me", middleware.AuthRequired(), h.GetCurrentUser)
		users.GET("/token-status", middleware.AuthRequired(), h.TokenStatus)
		users.GET("/:id", middleware.AuthRequired(), h.GetUser)
	}

	providers := api.Group("/providers")
	{
		providers.GET("/", h.ListProviders)
		providers.GET("/match/", h.MatchProviders)
		providers.GET("/:id", h.GetProvider)
	}

	bookings := api.Group("/bookings", middleware.AuthRequired())
	{
		bookings.POST("/", h.CreateBooking)
		bookings.PUT("/confirm", h.ConfirmBooking)
		bookings.GET("/user/:id", h.GetUserBookings)
		bookings.GET("/provider/:id", h.GetProviderBookings)
		bookings.DELETE("/cancel/:id", h.CancelBooking)
		bookings.PUT("/reschedule/:id", h.RescheduleBooking)
	}

	insurance := api.Group("/insurance")
	{
		insurance.GET("/", h.ListInsurancePlans)
		insurance.GET("/providers/:provider_name", h.GetPlansByProvider)
		insurance.GET("/:id", h.GetInsurancePlan)
		insurance.POST("/", middleware.AuthRequired(), h.CreateInsurancePlan)
		insurance.PUT("/:id", middleware.AuthRequired(), h.UpdateInsurancePlan)
		insurance.DELETE("/:id", middleware.AuthRequired(), h.DeleteInsurancePlan)
	}

	api.POST("/ai/gemini-care-tips/", middleware.AuthRequired(), h.GenerateCareTips)
}
