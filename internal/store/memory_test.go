package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcare/smartcare-api/internal/models"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	u := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hashed"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if u.ID == "" {
		t.Fatal("CreateUser() did not assign an id")
	}

	byEmail, err := s.GetUserByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("GetUserByEmail().ID = %q, want %q", byEmail.ID, u.ID)
	}

	byID, err := s.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if byID.Name != "Asha" {
		t.Errorf("GetUserByID().Name = %q, want Asha", byID.Name)
	}

	if _, err := s.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByEmail(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryProvidersPreserveOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if err := s.CreateProvider(ctx, &models.Provider{Name: n}); err != nil {
			t.Fatalf("CreateProvider(%s) error = %v", n, err)
		}
	}

	listed, err := s.ListProviders(ctx)
	if err != nil {
		t.Fatalf("ListProviders() error = %v", err)
	}
	if len(listed) != len(names) {
		t.Fatalf("len = %d, want %d", len(listed), len(names))
	}
	for i, n := range names {
		if listed[i].Name != n {
			t.Errorf("listed[%d].Name = %q, want %q", i, listed[i].Name, n)
		}
	}
}

func TestMemoryBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	b := &models.Booking{
		UserID:          "u1",
		ProviderID:      "p1",
		Status:          models.BookingStatusPending,
		AppointmentTime: time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
	}
	if err := s.CreateBooking(ctx, b); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	found, err := s.FindBookingByUserAndProvider(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("FindBookingByUserAndProvider() error = %v", err)
	}
	if found.ID != b.ID {
		t.Errorf("found.ID = %q, want %q", found.ID, b.ID)
	}

	confirmAt := time.Date(2026, 9, 11, 9, 30, 0, 0, time.UTC)
	details := &models.ProviderDetails{Name: "Dr. Rao", Specialty: "Cardiology"}
	if err := s.ConfirmBooking(ctx, b.ID, confirmAt, details); err != nil {
		t.Fatalf("ConfirmBooking() error = %v", err)
	}
	got, err := s.GetBookingByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBookingByID() error = %v", err)
	}
	if got.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", got.Status)
	}
	if got.ConfirmedAt == nil {
		t.Error("ConfirmedAt not set")
	}
	if !got.AppointmentTime.Equal(confirmAt) {
		t.Errorf("AppointmentTime = %v, want %v", got.AppointmentTime, confirmAt)
	}
	if got.ProviderDetails == nil || got.ProviderDetails.Name != "Dr. Rao" {
		t.Errorf("ProviderDetails = %v, want snapshot of Dr. Rao", got.ProviderDetails)
	}

	newTime := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	if err := s.RescheduleBooking(ctx, b.ID, newTime); err != nil {
		t.Fatalf("RescheduleBooking() error = %v", err)
	}
	got, err = s.GetBookingByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBookingByID() error = %v", err)
	}
	if got.Status != models.BookingStatusPending {
		t.Errorf("Status after reschedule = %q, want pending", got.Status)
	}
	if got.RescheduledAt == nil {
		t.Error("RescheduledAt not set")
	}
	if !got.AppointmentTime.Equal(newTime) {
		t.Errorf("AppointmentTime = %v, want %v", got.AppointmentTime, newTime)
	}

	if err := s.DeleteBooking(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBooking() error = %v", err)
	}
	if _, err := s.GetBookingByID(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBookingByID(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteBooking(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteBooking(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryListBookingsByUserAndProvider(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	seed := []models.Booking{
		{UserID: "u1", ProviderID: "p1"},
		{UserID: "u1", ProviderID: "p2"},
		{UserID: "u2", ProviderID: "p1"},
	}
	for i := range seed {
		if err := s.CreateBooking(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
	}

	byUser, err := s.ListBookingsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListBookingsByUser() error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("len(byUser) = %d, want 2", len(byUser))
	}

	byProvider, err := s.ListBookingsByProvider(ctx, "p1")
	if err != nil {
		t.Fatalf("ListBookingsByProvider() error = %v", err)
	}
	if len(byProvider) != 2 {
		t.Errorf("len(byProvider) = %d, want 2", len(byProvider))
	}

	none, err := s.ListBookingsByUser(ctx, "u3")
	if err != nil {
		t.Fatalf("ListBookingsByUser(u3) error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("ListBookingsByUser(u3) = %v, want empty slice", none)
	}
}

func TestMemoryInsurancePlans(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	seed := []models.InsurancePlan{
		{ProviderName: "Star Health", PlanName: "Comprehensive", PlanType: "PPO"},
		{ProviderName: "Star Health", PlanName: "Basic", PlanType: "HMO"},
		{ProviderName: "HDFC ERGO", PlanName: "Optima", PlanType: "PPO"},
	}
	for i := range seed {
		if err := s.CreateInsurancePlan(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateInsurancePlan() error = %v", err)
		}
	}

	tests := []struct {
		name         string
		providerName string
		planType     string
		want         int
	}{
		{"no filters", "", "", 3},
		{"by provider", "Star Health", "", 2},
		{"by provider case insensitive", "star health", "", 2},
		{"by provider substring", "Star", "", 2},
		{"by type", "", "PPO", 2},
		{"both filters", "Star Health", "PPO", 1},
		{"no match", "Acme", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListInsurancePlans(ctx, tt.providerName, tt.planType)
			if err != nil {
				t.Fatalf("ListInsurancePlans() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	// Update replaces the document but keeps id and created_at.
	id := seed[0].ID
	created := seed[0].CreatedAt
	if err := s.UpdateInsurancePlan(ctx, id, &models.InsurancePlan{
		ProviderName: "Star Health",
		PlanName:     "Comprehensive Plus",
		PlanType:     "PPO",
	}); err != nil {
		t.Fatalf("UpdateInsurancePlan() error = %v", err)
	}
	updated, err := s.GetInsurancePlan(ctx, id)
	if err != nil {
		t.Fatalf("GetInsurancePlan() error = %v", err)
	}
	if updated.PlanName != "Comprehensive Plus" {
		t.Errorf("PlanName = %q, want Comprehensive Plus", updated.PlanName)
	}
	if updated.ID != id {
		t.Errorf("ID = %q, want %q", updated.ID, id)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", updated.CreatedAt, created)
	}

	if err := s.UpdateInsurancePlan(ctx, "missing", &models.InsurancePlan{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateInsurancePlan(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteInsurancePlan(ctx, id); err != nil {
		t.Fatalf("DeleteInsurancePlan() error = %v", err)
	}
	if _, err := s.GetInsurancePlan(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetInsurancePlan(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryKeepsSeededIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	p := &models.Provider{ID: "prov_001", Name: "Dr. Rao"}
	if err := s.CreateProvider(ctx, p); err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}
	got, err := s.GetProviderByID(ctx, "prov_001")
	if err != nil {
		t.Fatalf("GetProviderByID() error = %v", err)
	}
	if got.Name != "Dr. Rao" {
		t.Errorf("Name = %q, want Dr. Rao", got.Name)
	}
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := parseID(oid.Hex()); got != oid {
		t.Errorf("parseID(hex) = %v, want ObjectID %v", got, oid)
	}
	if got := parseID("prov_001"); got != "prov_001" {
		t.Errorf("parseID(opaque) = %v, want the string back", got)
	}
	// 24 characters but not hex stays a string.
	if got := parseID("zzzzzzzzzzzzzzzzzzzzzzzz"); got != "zzzzzzzzzzzzzzzzzzzzzzzz" {
		t.Errorf("parseID(non-hex 24) = %v, want the string back", got)
	}
}
