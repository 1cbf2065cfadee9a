package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartcare/smartcare-api/internal/models"
)

// Memory keeps all documents in process memory. It is selected explicitly at
// startup (STORE_BACKEND=memory) for development and is the store used by the
// handler tests. Documents get uuid ids, and listings preserve insertion
// order so the matching engine sees a stable directory order.
type Memory struct {
	mu sync.RWMutex

	users     map[string]models.User
	userOrder []string

	providers     map[string]models.Provider
	providerOrder []string

	bookings     map[string]models.Booking
	bookingOrder []string

	plans     map[string]models.InsurancePlan
	planOrder []string
}

func NewMemory() *Memory {
	return &Memory{
		users:     make(map[string]models.User),
		providers: make(map[string]models.Provider),
		bookings:  make(map[string]models.Booking),
		plans:     make(map[string]models.InsurancePlan),
	}
}

func (s *Memory) Name() string { return "memory" }

// --- Users ---

func (s *Memory) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.users[user.ID] = *user
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// --- Providers ---

func (s *Memory) CreateProvider(ctx context.Context, provider *models.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	s.providers[provider.ID] = *provider
	s.providerOrder = append(s.providerOrder, provider.ID)
	return nil
}

func (s *Memory) ListProviders(ctx context.Context) ([]models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Provider, 0, len(s.providerOrder))
	for _, id := range s.providerOrder {
		out = append(out, s.providers[id])
	}
	return out, nil
}

func (s *Memory) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.providers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// --- Bookings ---

func (s *Memory) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	s.bookings[booking.ID] = *booking
	s.bookingOrder = append(s.bookingOrder, booking.ID)
	return nil
}

func (s *Memory) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *Memory) FindBookingByUserAndProvider(ctx context.Context, userID, providerID string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.bookingOrder {
		if b := s.bookings[id]; b.UserID == userID && b.ProviderID == providerID {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, id := range s.bookingOrder {
		if b := s.bookings[id]; b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Memory) ListBookingsByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, id := range s.bookingOrder {
		if b := s.bookings[id]; b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Memory) ConfirmBooking(ctx context.Context, id string, appointmentTime time.Time, details *models.ProviderDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	b.Status = models.BookingStatusConfirmed
	b.ConfirmedAt = &now
	b.AppointmentTime = appointmentTime
	b.ProviderDetails = details
	b.UpdatedAt = now
	s.bookings[id] = b
	return nil
}

func (s *Memory) RescheduleBooking(ctx context.Context, id string, newTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	b.AppointmentTime = newTime
	b.Status = models.BookingStatusPending
	b.RescheduledAt = &now
	b.UpdatedAt = now
	s.bookings[id] = b
	return nil
}

func (s *Memory) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, id)
	s.bookingOrder = removeID(s.bookingOrder, id)
	return nil
}

// --- Insurance plans ---

func (s *Memory) CreateInsurancePlan(ctx context.Context, plan *models.InsurancePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	s.plans[plan.ID] = *plan
	s.planOrder = append(s.planOrder, plan.ID)
	return nil
}

func (s *Memory) GetInsurancePlan(ctx context.Context, id string) (*models.InsurancePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *Memory) ListInsurancePlans(ctx context.Context, providerName, planType string) ([]models.InsurancePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InsurancePlan, 0)
	for _, id := range s.planOrder {
		p := s.plans[id]
		if providerName != "" && !containsFold(p.ProviderName, providerName) {
			continue
		}
		if planType != "" && !containsFold(p.PlanType, planType) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Memory) UpdateInsurancePlan(ctx context.Context, id string, plan *models.InsurancePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.plans[id]
	if !ok {
		return ErrNotFound
	}
	updated := *plan
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.plans[id] = updated
	return nil
}

func (s *Memory) DeleteInsurancePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[id]; !ok {
		return ErrNotFound
	}
	delete(s.plans, id)
	s.planOrder = removeID(s.planOrder, id)
	return nil
}

// containsFold mirrors the case-insensitive $regex filters of the Mongo store.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
