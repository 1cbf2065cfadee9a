package models

import "time"

type InsurancePlan struct {
	ID              string             `bson:"_id,omitempty" json:"_id"`
	ProviderName    string             `bson:"provider_name" json:"provider_name"`
	PlanName        string             `bson:"plan_name" json:"plan_name"`
	PlanType        string             `bson:"plan_type" json:"plan_type"` // "PPO", "HMO", "EPO", "POS"
	CoverageDetails map[string]string  `bson:"coverage_details" json:"coverage_details"`
	CostSharing     map[string]string  `bson:"cost_sharing" json:"cost_sharing"`
	NetworkType     string             `bson:"network_type" json:"network_type"`
	AnnualPremium   float64            `bson:"annual_premium" json:"annual_premium"`
	Deductible      float64            `bson:"deductible" json:"deductible"`
	Copay           map[string]float64 `bson:"copay" json:"copay"`
	Coinsurance     float64            `bson:"coinsurance" json:"coinsurance"`
	OutOfPocketMax  float64            `bson:"out_of_pocket_max" json:"out_of_pocket_max"`

	PrescriptionCoverage bool `bson:"prescription_coverage" json:"prescription_coverage"`
	MentalHealthCoverage bool `bson:"mental_health_coverage" json:"mental_health_coverage"`
	DentalCoverage       bool `bson:"dental_coverage" json:"dental_coverage"`
	VisionCoverage       bool `bson:"vision_coverage" json:"vision_coverage"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
