package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartcare/smartcare-api/internal/models"
)

// Mongo persists documents in the smartcare database. Collections: users,
// providers, bookings, insurance_plans.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (s *Mongo) Name() string { return "mongo" }

func insertedID(res *mongo.InsertOneResult) string {
	switch v := res.InsertedID.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// --- Users ---

func (s *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = insertedID(res)
	return nil
}

func (s *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *Mongo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"_id": parseID(id)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// --- Providers ---

func (s *Mongo) CreateProvider(ctx context.Context, provider *models.Provider) error {
	res, err := s.db.Collection("providers").InsertOne(ctx, provider)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	provider.ID = insertedID(res)
	return nil
}

func (s *Mongo) ListProviders(ctx context.Context) ([]models.Provider, error) {
	cursor, err := s.db.Collection("providers").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	if providers == nil {
		providers = make([]models.Provider, 0)
	}
	return providers, nil
}

func (s *Mongo) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	err := s.db.Collection("providers").FindOne(ctx, bson.M{"_id": parseID(id)}).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return &provider, nil
}

// --- Bookings ---

func (s *Mongo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	res, err := s.db.Collection("bookings").InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	booking.ID = insertedID(res)
	return nil
}

func (s *Mongo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Collection("bookings").FindOne(ctx, bson.M{"_id": parseID(id)}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

func (s *Mongo) FindBookingByUserAndProvider(ctx context.Context, userID, providerID string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{"user_id": userID, "provider_id": providerID}
	err := s.db.Collection("bookings").FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booking by user and provider: %w", err)
	}
	return &booking, nil
}

func (s *Mongo) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.listBookings(ctx, bson.M{"user_id": userID})
}

func (s *Mongo) ListBookingsByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.listBookings(ctx, bson.M{"provider_id": providerID})
}

func (s *Mongo) listBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.db.Collection("bookings").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	return bookings, nil
}

func (s *Mongo) ConfirmBooking(ctx context.Context, id string, appointmentTime time.Time, details *models.ProviderDetails) error {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":           models.BookingStatusConfirmed,
		"confirmed_at":     now,
		"appointment_time": appointmentTime,
		"provider_details": details,
		"updated_at":       now,
	}}
	res, err := s.db.Collection("bookings").UpdateOne(ctx, bson.M{"_id": parseID(id)}, update)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) RescheduleBooking(ctx context.Context, id string, newTime time.Time) error {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"appointment_time": newTime,
		"status":           models.BookingStatusPending,
		"rescheduled_at":   now,
		"updated_at":       now,
	}}
	res, err := s.db.Collection("bookings").UpdateOne(ctx, bson.M{"_id": parseID(id)}, update)
	if err != nil {
		return fmt.Errorf("reschedule booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) DeleteBooking(ctx context.Context, id string) error {
	res, err := s.db.Collection("bookings").DeleteOne(ctx, bson.M{"_id": parseID(id)})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Insurance plans ---

func (s *Mongo) CreateInsurancePlan(ctx context.Context, plan *models.InsurancePlan) error {
	res, err := s.db.Collection("insurance_plans").InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("insert insurance plan: %w", err)
	}
	plan.ID = insertedID(res)
	return nil
}

func (s *Mongo) GetInsurancePlan(ctx context.Context, id string) (*models.InsurancePlan, error) {
	var plan models.InsurancePlan
	err := s.db.Collection("insurance_plans").FindOne(ctx, bson.M{"_id": parseID(id)}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find insurance plan: %w", err)
	}
	return &plan, nil
}

func (s *Mongo) ListInsurancePlans(ctx context.Context, providerName, planType string) ([]models.InsurancePlan, error) {
	filter := bson.M{}
	if providerName != "" {
		filter["provider_name"] = primitive.Regex{Pattern: providerName, Options: "i"}
	}
	if planType != "" {
		filter["plan_type"] = primitive.Regex{Pattern: planType, Options: "i"}
	}

	cursor, err := s.db.Collection("insurance_plans").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find insurance plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.InsurancePlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("decode insurance plans: %w", err)
	}
	if plans == nil {
		plans = make([]models.InsurancePlan, 0)
	}
	return plans, nil
}

func (s *Mongo) UpdateInsurancePlan(ctx context.Context, id string, plan *models.InsurancePlan) error {
	update := bson.M{"$set": bson.M{
		"provider_name":          plan.ProviderName,
		"plan_name":              plan.PlanName,
		"plan_type":              plan.PlanType,
		"coverage_details":       plan.CoverageDetails,
		"cost_sharing":           plan.CostSharing,
		"network_type":           plan.NetworkType,
		"annual_premium":         plan.AnnualPremium,
		"deductible":             plan.Deductible,
		"copay":                  plan.Copay,
		"coinsurance":            plan.Coinsurance,
		"out_of_pocket_max":      plan.OutOfPocketMax,
		"prescription_coverage":  plan.PrescriptionCoverage,
		"mental_health_coverage": plan.MentalHealthCoverage,
		"dental_coverage":        plan.DentalCoverage,
		"vision_coverage":        plan.VisionCoverage,
		"updated_at":             time.Now().UTC(),
	}}
	res, err := s.db.Collection("insurance_plans").UpdateOne(ctx, bson.M{"_id": parseID(id)}, update)
	if err != nil {
		return fmt.Errorf("update insurance plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) DeleteInsurancePlan(ctx context.Context, id string) error {
	res, err := s.db.Collection("insurance_plans").DeleteOne(ctx, bson.M{"_id": parseID(id)})
	if err != nil {
		return fmt.Errorf("delete insurance plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
