package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartcare/smartcare-api/internal/middleware"
	"github.com/smartcare/smartcare-api/internal/models"
	"github.com/smartcare/smartcare-api/internal/services"
	"github.com/smartcare/smartcare-api/internal/store"
)

type BookingRequest struct {
	ProviderID      string    `json:"provider_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
	Status          string    `json:"status"`

	InsuranceProvider string `json:"insurance_provider"`
	InsurancePlan     string `json:"insurance_plan"`
	MemberID          string `json:"member_id"`
}

type bookingResponse struct {
	models.Booking
	EmailWarning string `json:"email_warning,omitempty"`
}

// CreateBooking books an appointment for the authenticated user, storing a
// snapshot of the provider at booking time. The confirmation email is a
// post-commit step; a failed send is reported as email_warning, never as a
// request failure.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Store.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	provider, err := h.Store.GetProviderByID(c.Request.Context(), req.ProviderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("create booking: provider lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	now := time.Now().UTC()
	booking := models.Booking{
		UserID:            user.ID,
		ProviderID:        req.ProviderID,
		AppointmentTime:   req.AppointmentTime,
		Status:            status,
		ProviderDetails:   models.Snapshot(provider),
		InsuranceProvider: req.InsuranceProvider,
		InsurancePlan:     req.InsurancePlan,
		MemberID:          req.MemberID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := h.Store.CreateBooking(c.Request.Context(), &booking); err != nil {
		h.Logger.Error().Err(err).Msg("create booking: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := bookingResponse{Booking: booking}
	err = h.Mailer.Send(c.Request.Context(), []string{user.Email}, services.TemplateAppointmentConfirmation, services.EmailData{
		UserName:         user.Name,
		UserEmail:        user.Email,
		UserPhone:        user.Phone,
		ProviderName:     provider.Name,
		ProviderLocation: provider.Address,
		AppointmentTime:  booking.AppointmentTime,
	})
	if err != nil {
		resp.EmailWarning = "confirmation email could not be sent"
	}

	h.Logger.Info().Str("booking_id", booking.ID).Str("user_id", user.ID).Str("provider", provider.Name).Msg("booking created")
	c.JSON(http.StatusCreated, resp)
}

// ConfirmBooking marks the user's booking with the given provider as
// confirmed, refreshing the provider snapshot and appointment time. If no
// booking exists yet, one is created directly in the confirmed state.
func (h *Handler) ConfirmBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := middleware.UserID(c)

	provider, err := h.Store.GetProviderByID(c.Request.Context(), req.ProviderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("confirm booking: provider lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	existing, err := h.Store.FindBookingByUserAndProvider(c.Request.Context(), userID, req.ProviderID)
	switch {
	case err == nil:
		if err := h.Store.ConfirmBooking(c.Request.Context(), existing.ID, req.AppointmentTime, models.Snapshot(provider)); err != nil {
			h.Logger.Error().Err(err).Msg("confirm booking: update failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to confirm booking"})
			return
		}
		h.Logger.Info().Str("booking_id", existing.ID).Str("user_id", userID).Msg("booking confirmed")
		c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully", "booking_id": existing.ID})

	case errors.Is(err, store.ErrNotFound):
		now := time.Now().UTC()
		booking := models.Booking{
			UserID:            userID,
			ProviderID:        req.ProviderID,
			AppointmentTime:   req.AppointmentTime,
			Status:            models.BookingStatusConfirmed,
			ProviderDetails:   models.Snapshot(provider),
			InsuranceProvider: req.InsuranceProvider,
			InsurancePlan:     req.InsurancePlan,
			MemberID:          req.MemberID,
			ConfirmedAt:       &now,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := h.Store.CreateBooking(c.Request.Context(), &booking); err != nil {
			h.Logger.Error().Err(err).Msg("confirm booking: insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		h.Logger.Info().Str("booking_id", booking.ID).Str("user_id", userID).Msg("booking created and confirmed")
		c.JSON(http.StatusOK, gin.H{"message": "Booking created and confirmed successfully", "booking_id": booking.ID})

	default:
		h.Logger.Error().Err(err).Msg("confirm booking: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetUserBookings lists the bookings of a user; only the owner may view them.
func (h *Handler) GetUserBookings(c *gin.Context) {
	userID := c.Param("id")
	if userID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only view your own bookings"})
		return
	}

	bookings, err := h.Store.ListBookingsByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("list user bookings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetProviderBookings lists all bookings held against a provider.
func (h *Handler) GetProviderBookings(c *gin.Context) {
	bookings, err := h.Store.ListBookingsByProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error().Err(err).Msg("list provider bookings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking hard-deletes a booking; only the owner may cancel.
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")

	booking, err := h.Store.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("cancel booking: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if booking.UserID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only cancel your own bookings"})
		return
	}

	if err := h.Store.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found or already cancelled"})
			return
		}
		h.Logger.Error().Err(err).Msg("cancel booking: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info().Str("booking_id", bookingID).Str("user_id", booking.UserID).Msg("booking cancelled")
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled and deleted successfully"})
}

// RescheduleBooking stores a new appointment time and resets the status to
// pending, even when the booking was already confirmed.
func (h *Handler) RescheduleBooking(c *gin.Context) {
	bookingID := c.Param("id")

	newTimeRaw := c.Query("new_time")
	if newTimeRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_time query parameter is required"})
		return
	}
	newTime, err := parseISOTime(newTimeRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date/time format. Use ISO format: YYYY-MM-DDTHH:MM:SS"})
		return
	}

	booking, err := h.Store.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("reschedule booking: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if booking.UserID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only reschedule your own bookings"})
		return
	}

	if err := h.Store.RescheduleBooking(c.Request.Context(), bookingID, newTime); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found or could not be rescheduled"})
			return
		}
		h.Logger.Error().Err(err).Msg("reschedule booking: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info().Str("booking_id", bookingID).Str("user_id", booking.UserID).Msg("booking rescheduled")
	c.JSON(http.StatusOK, gin.H{"message": "Booking rescheduled successfully"})
}

// parseISOTime accepts RFC3339 as well as the naive YYYY-MM-DDTHH:MM:SS form
// clients historically sent.
func parseISOTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}
