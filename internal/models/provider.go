package models

// Provider is a read-only directory entry. MatchScore and MatchReasons are
// computed per request by the matching engine and never persisted.
type Provider struct {
	ID                 string   `bson:"_id,omitempty" json:"_id"`
	Name               string   `bson:"name" json:"name"`
	Specialty          string   `bson:"specialty" json:"specialty"`
	Address            string   `bson:"address" json:"address"`
	City               string   `bson:"city,omitempty" json:"city,omitempty"`
	State              string   `bson:"state,omitempty" json:"state,omitempty"`
	Pincode            string   `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Phone              string   `bson:"phone" json:"phone"`
	Email              string   `bson:"email" json:"email"`
	Rating             float64  `bson:"rating" json:"rating"`
	WaitTime           string   `bson:"wait_time" json:"wait_time"`
	AcceptedInsurances []string `bson:"accepted_insurances" json:"accepted_insurances"`
	Experience         string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Education          string   `bson:"education,omitempty" json:"education,omitempty"`
	Hospital           string   `bson:"hospital,omitempty" json:"hospital,omitempty"`
	LocationLat        float64  `bson:"location_lat,omitempty" json:"location_lat,omitempty"`
	LocationLng        float64  `bson:"location_lng,omitempty" json:"location_lng,omitempty"`

	MatchScore   *float64 `bson:"-" json:"match_score,omitempty"`
	MatchReasons []string `bson:"-" json:"match_reasons,omitempty"`
}
