package store

import (
	"context"
	"errors"
	"time"

	"github.com/smartcare/smartcare-api/internal/models"
)

var ErrNotFound = errors.New("document not found")

// Store contains all persistence operations the handlers need. Two
// implementations exist: Mongo for real deployments and Memory for
// development and tests. The backend is chosen once at process start and
// never swapped mid-run.
type Store interface {
	// Name reports the active backend, for the health endpoint.
	Name() string

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreateProvider(ctx context.Context, provider *models.Provider) error
	ListProviders(ctx context.Context) ([]models.Provider, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	FindBookingByUserAndProvider(ctx context.Context, userID, providerID string) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBookingsByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, id string, appointmentTime time.Time, details *models.ProviderDetails) error
	RescheduleBooking(ctx context.Context, id string, newTime time.Time) error
	DeleteBooking(ctx context.Context, id string) error

	CreateInsurancePlan(ctx context.Context, plan *models.InsurancePlan) error
	GetInsurancePlan(ctx context.Context, id string) (*models.InsurancePlan, error)
	ListInsurancePlans(ctx context.Context, providerName, planType string) ([]models.InsurancePlan, error)
	UpdateInsurancePlan(ctx context.Context, id string, plan *models.InsurancePlan) error
	DeleteInsurancePlan(ctx context.Context, id string) error
}
