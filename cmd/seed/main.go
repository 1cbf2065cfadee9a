package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartcare/smartcare-api/internal/config"
	"github.com/smartcare/smartcare-api/internal/models"
	"github.com/smartcare/smartcare-api/internal/store"
)

// Only these insurers appear in generated directory entries.
var allowedInsurances = []string{
	"Apollo Munich",
	"Bajaj Allianz",
	"ICICI Lombard",
	"Star Health",
	"HDFC ERGO",
	"SBI Health",
	"National Insurance",
}

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"Internal Medicine",
	"General Physician",
	"Family Medicine",
	"Orthopedics",
	"Neurology",
	"Gastroenterology",
	"Pulmonologist",
	"ENT",
	"Pediatrics",
}

var cities = []string{"Guntur", "Vijayawada", "Mangalagiri", "Hyderabad", "Visakhapatnam"}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("seed starting")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.StoreBackend != "mongo" {
		logger.Fatal().Msg("seeding requires STORE_BACKEND=mongo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	st := store.NewMongo(client.Database(cfg.MongoDB))

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedProviders(context.Background(), st, 15); err != nil {
		logger.Fatal().Err(err).Msg("seed providers failed")
	}
	if err := seedInsurancePlans(context.Background(), st); err != nil {
		logger.Fatal().Err(err).Msg("seed insurance plans failed")
	}

	logger.Info().Msg("seed complete")
}

func seedProviders(ctx context.Context, st store.Store, generated int) error {
	fixed := []models.Provider{
		{
			ID:                 "prov_001",
			Name:               "Dr. Jayanth Kotte",
			Specialty:          "Cardiology",
			AcceptedInsurances: []string{"Apollo Munich", "Bajaj Allianz", "ICICI Lombard"},
			Address:            "Apollo Hospital, MG Road, Guntur, Andhra Pradesh",
			City:               "Guntur",
			State:              "AP",
			Pincode:            "522001",
			Phone:              "+91 863 234 5678",
			Email:              "dr.jayanth@apollohospital.com",
			Rating:             4.8,
			WaitTime:           "20 mins",
			Experience:         "15 years",
			Education:          "AIIMS Delhi",
			Hospital:           "Apollo Hospital, Guntur",
			LocationLat:        16.3067,
			LocationLng:        80.4365,
		},
		{
			ID:                 "prov_002",
			Name:               "Dr. Priya Reddy",
			Specialty:          "Dermatology",
			AcceptedInsurances: []string{"Star Health", "HDFC ERGO", "National Insurance"},
			Address:            "Care Hospital, Benz Circle, Vijayawada, Andhra Pradesh",
			City:               "Vijayawada",
			State:              "AP",
			Pincode:            "520010",
			Phone:              "+91 866 345 6789",
			Email:              "dr.priya@carehospital.com",
			Rating:             4.9,
			WaitTime:           "15 mins",
			Experience:         "12 years",
			Education:          "CMC Vellore",
			Hospital:           "Care Hospital, Vijayawada",
			LocationLat:        16.5062,
			LocationLng:        80.6480,
		},
		{
			ID:                 "prov_003",
			Name:               "Dr. Harish Annem",
			Specialty:          "Orthopedics",
			AcceptedInsurances: []string{"Apollo Munich", "SBI Health", "Star Health"},
			Address:            "KIMS Hospital, Mangalagiri, Andhra Pradesh",
			City:               "Mangalagiri",
			State:              "AP",
			Pincode:            "522503",
			Phone:              "+91 864 456 7890",
			Email:              "dr.harish@kimshospital.com",
			Rating:             4.7,
			WaitTime:           "30 mins",
			Experience:         "18 years",
			Education:          "Osmania Medical College",
			Hospital:           "KIMS Hospital, Mangalagiri",
			LocationLat:        16.4300,
			LocationLng:        80.5500,
		},
		{
			ID:                 "prov_004",
			Name:               "Dr. Lakshmi Prasanna",
			Specialty:          "General Physician",
			AcceptedInsurances: []string{"HDFC ERGO", "National Insurance", "Bajaj Allianz"},
			Address:            "Ramesh Hospitals, Labbipet, Vijayawada, Andhra Pradesh",
			City:               "Vijayawada",
			State:              "AP",
			Pincode:            "520010",
			Phone:              "+91 866 456 1234",
			Email:              "dr.lakshmi@rameshhospitals.com",
			Rating:             4.6,
			WaitTime:           "10 mins",
			Experience:         "20 years",
			Education:          "Andhra Medical College",
			Hospital:           "Ramesh Hospitals, Vijayawada",
			LocationLat:        16.5130,
			LocationLng:        80.6320,
		},
	}

	for i := range fixed {
		if err := st.CreateProvider(ctx, &fixed[i]); err != nil {
			return fmt.Errorf("insert provider %s: %w", fixed[i].ID, err)
		}
	}

	for i := 0; i < generated; i++ {
		city := cities[gofakeit.Number(0, len(cities)-1)]
		insurances := pickInsurances(2 + gofakeit.Number(0, 2))
		p := models.Provider{
			Name:               "Dr. " + gofakeit.Name(),
			Specialty:          specialties[gofakeit.Number(0, len(specialties)-1)],
			AcceptedInsurances: insurances,
			Address:            fmt.Sprintf("%s, %s, Andhra Pradesh", gofakeit.Street(), city),
			City:               city,
			State:              "AP",
			Pincode:            fmt.Sprintf("%06d", gofakeit.Number(520000, 535000)),
			Phone:              gofakeit.Phone(),
			Email:              gofakeit.Email(),
			Rating:             float64(gofakeit.Number(30, 50)) / 10,
			WaitTime:           fmt.Sprintf("%d mins", gofakeit.Number(5, 45)),
			Experience:         fmt.Sprintf("%d years", gofakeit.Number(2, 30)),
		}
		if err := st.CreateProvider(ctx, &p); err != nil {
			return fmt.Errorf("insert generated provider: %w", err)
		}
	}

	return nil
}

func pickInsurances(n int) []string {
	if n > len(allowedInsurances) {
		n = len(allowedInsurances)
	}
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		ins := allowedInsurances[gofakeit.Number(0, len(allowedInsurances)-1)]
		if !seen[ins] {
			seen[ins] = true
			picked = append(picked, ins)
		}
	}
	return picked
}

func seedInsurancePlans(ctx context.Context, st store.Store) error {
	now := time.Now().UTC()
	plans := []models.InsurancePlan{
		{
			ProviderName: "Star Health",
			PlanName:     "Star Comprehensive PPO",
			PlanType:     "PPO",
			CoverageDetails: map[string]string{
				"preventive_care":    "100% covered",
				"primary_care":       "Covered after deductible",
				"specialist_visits":  "Covered after deductible",
				"emergency_room":     "Covered after deductible",
				"urgent_care":        "Covered after deductible",
				"laboratory_tests":   "Covered after deductible",
				"imaging":            "Covered after deductible",
				"prescription_drugs": "Covered with copay",
			},
			CostSharing: map[string]string{
				"deductible":  "Individual: $1,500, Family: $3,000",
				"copay":       "Primary care: $25, Specialist: $40, Urgent care: $50",
				"coinsurance": "20% after deductible",
			},
			NetworkType:   "In-network",
			AnnualPremium: 4800.0,
			Deductible:    1500.0,
			Copay: map[string]float64{
				"primary_care":         25.0,
				"specialist":           40.0,
				"urgent_care":          50.0,
				"emergency_room":       200.0,
				"prescription_generic": 10.0,
				"prescription_brand":   40.0,
			},
			Coinsurance:          20.0,
			OutOfPocketMax:       6000.0,
			PrescriptionCoverage: true,
			MentalHealthCoverage: true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ProviderName: "HDFC ERGO",
			PlanName:     "Optima Secure HMO",
			PlanType:     "HMO",
			CoverageDetails: map[string]string{
				"preventive_care":    "100% covered",
				"primary_care":       "Covered with copay",
				"specialist_visits":  "Referral required, covered with copay",
				"emergency_room":     "Covered after deductible",
				"urgent_care":        "Covered with copay",
				"laboratory_tests":   "Covered in-network",
				"imaging":            "Covered in-network",
				"prescription_drugs": "Covered with copay",
			},
			CostSharing: map[string]string{
				"deductible":  "Individual: $1,000, Family: $2,000",
				"copay":       "Primary care: $20, Specialist: $35, Urgent care: $40",
				"coinsurance": "15% after deductible",
			},
			NetworkType:   "In-network",
			AnnualPremium: 3600.0,
			Deductible:    1000.0,
			Copay: map[string]float64{
				"primary_care":         20.0,
				"specialist":           35.0,
				"urgent_care":          40.0,
				"emergency_room":       150.0,
				"prescription_generic": 8.0,
				"prescription_brand":   35.0,
			},
			Coinsurance:          15.0,
			OutOfPocketMax:       5000.0,
			PrescriptionCoverage: true,
			MentalHealthCoverage: true,
			DentalCoverage:       true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ProviderName: "Bajaj Allianz",
			PlanName:     "Health Guard EPO",
			PlanType:     "EPO",
			CoverageDetails: map[string]string{
				"preventive_care":    "100% covered",
				"primary_care":       "Covered after deductible",
				"specialist_visits":  "Covered after deductible, no referral",
				"emergency_room":     "Covered after deductible",
				"urgent_care":        "Covered after deductible",
				"laboratory_tests":   "Covered in-network only",
				"imaging":            "Covered in-network only",
				"prescription_drugs": "Covered with copay",
			},
			CostSharing: map[string]string{
				"deductible":  "Individual: $2,000, Family: $4,000",
				"copay":       "Primary care: $30, Specialist: $45, Urgent care: $55",
				"coinsurance": "25% after deductible",
			},
			NetworkType:   "In-network",
			AnnualPremium: 3000.0,
			Deductible:    2000.0,
			Copay: map[string]float64{
				"primary_care":         30.0,
				"specialist":           45.0,
				"urgent_care":          55.0,
				"emergency_room":       250.0,
				"prescription_generic": 12.0,
				"prescription_brand":   45.0,
			},
			Coinsurance:          25.0,
			OutOfPocketMax:       7000.0,
			PrescriptionCoverage: true,
			VisionCoverage:       true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}

	for i := range plans {
		if err := st.CreateInsurancePlan(ctx, &plans[i]); err != nil {
			return fmt.Errorf("insert insurance plan %q: %w", plans[i].PlanName, err)
		}
	}
	return nil
}
