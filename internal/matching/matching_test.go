package matching

import (
	"testing"

	"github.com/smartcare/smartcare-api/internal/models"
)

func TestScoreProviderInsurance(t *testing.T) {
	tests := []struct {
		name      string
		accepted  []string
		insurance string
		want      float64
		reason    string
	}{
		{"exact match", []string{"HDFC ERGO", "Star Health"}, "HDFC ERGO", 35, "Accepts HDFC ERGO"},
		{"exact match case insensitive", []string{"hdfc ergo"}, "HDFC ERGO", 35, "Accepts HDFC ERGO"},
		{"partial match", []string{"Star Health Premier"}, "Star Health", 30, "Accepts similar insurance"},
		{"partial match reversed", []string{"Star"}, "Star Health", 30, "Accepts similar insurance"},
		{"no match", []string{"Aetna"}, "HDFC ERGO", 0, ""},
		{"empty query", []string{"HDFC ERGO"}, "", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Provider{AcceptedInsurances: tt.accepted}
			score, reasons := scoreProvider(p, Query{Insurance: tt.insurance})
			if score != tt.want {
				t.Errorf("score = %v, want %v", score, tt.want)
			}
			if tt.reason != "" && !hasReason(reasons, tt.reason) {
				t.Errorf("reasons = %v, want to contain %q", reasons, tt.reason)
			}
		})
	}
}

func TestScoreProviderLocation(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		location string
		want     float64
		reason   string
	}{
		{"exact city", "Guntur", "Guntur", 20, "Located in Guntur"},
		{"exact city case insensitive", "Guntur", "guntur", 20, "Located in Guntur"},
		{"substring", "Greater Vijayawada", "Vijayawada", 10, "Near Greater Vijayawada"},
		{"no match", "Guntur", "Hyderabad", 0, ""},
		{"empty city", "", "Guntur", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Provider{City: tt.city}
			score, reasons := scoreProvider(p, Query{Location: tt.location})
			if score != tt.want {
				t.Errorf("score = %v, want %v", score, tt.want)
			}
			if tt.reason != "" && !hasReason(reasons, tt.reason) {
				t.Errorf("reasons = %v, want to contain %q", reasons, tt.reason)
			}
		})
	}
}

func TestScoreProviderSymptoms(t *testing.T) {
	tests := []struct {
		name      string
		specialty string
		symptoms  string
		want      float64
		reason    string
	}{
		{"listed specialty", "Dermatology", "rash", 35, "Specializes in rash treatment"},
		{"generalist", "General Physician", "rash", 30, "Can treat rash"},
		{"generalist substring", "Senior General Physician", "fever", 30, "Can treat fever"},
		{"unknown symptom", "Dermatology", "telepathy", 0, ""},
		{"unlisted specialty", "Cardiology", "rash", 0, ""},
		{"best of several symptoms", "Dermatology", "fever, rash", 35, "Specializes in rash treatment"},
		{"symptom whitespace trimmed", "Cardiology", "  chest pain  ", 35, "Specializes in chest pain treatment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Provider{Specialty: tt.specialty}
			score, reasons := scoreProvider(p, Query{Symptoms: tt.symptoms})
			if score != tt.want {
				t.Errorf("score = %v, want %v", score, tt.want)
			}
			if tt.reason != "" && !hasReason(reasons, tt.reason) {
				t.Errorf("reasons = %v, want to contain %q", reasons, tt.reason)
			}
		})
	}
}

func TestScoreProviderBonus(t *testing.T) {
	p := models.Provider{
		Specialty:          "Dermatology",
		City:               "Guntur",
		AcceptedInsurances: []string{"HDFC ERGO"},
		Rating:             4.5,
		WaitTime:           "10 mins",
		Experience:         "18 years",
	}
	q := Query{Symptoms: "rash", Insurance: "HDFC ERGO", Location: "Guntur"}
	score, reasons := scoreProvider(p, q)

	// base 90, bonus 6 + 2 + 2 capped at 10
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	for _, want := range []string{"High rating: 4.5", "Quick wait time", "Highly experienced"} {
		if !hasReason(reasons, want) {
			t.Errorf("reasons = %v, want to contain %q", reasons, want)
		}
	}
}

func TestScoreProviderBonusNotCapped(t *testing.T) {
	p := models.Provider{
		Specialty: "Dermatology",
		Rating:    2.0,
		WaitTime:  "5 mins",
	}
	score, _ := scoreProvider(p, Query{Symptoms: "rash"})
	// base 35, bonus 4 + 2, cap unused
	if score != 41 {
		t.Errorf("score = %v, want 41", score)
	}
}

func TestRankOrdersAndTruncates(t *testing.T) {
	directory := []models.Provider{
		{ID: "p1", Name: "Generalist", Specialty: "General Physician"},
		{ID: "p2", Name: "Specialist", Specialty: "Dermatology"},
		{ID: "p3", Name: "Unrelated", Specialty: "Cardiology"},
		{ID: "p4", Name: "Another Generalist", Specialty: "Family Medicine"},
	}

	matches, err := Rank(directory, Query{Symptoms: "rash", Limit: 2})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].ID != "p2" {
		t.Errorf("matches[0].ID = %q, want p2", matches[0].ID)
	}
	// p1 and p4 tie at 30; directory order decides.
	if matches[1].ID != "p1" {
		t.Errorf("matches[1].ID = %q, want p1", matches[1].ID)
	}
	if matches[0].MatchScore == nil || *matches[0].MatchScore != 35 {
		t.Errorf("matches[0].MatchScore = %v, want 35", matches[0].MatchScore)
	}
}

func TestRankDropsZeroScorers(t *testing.T) {
	directory := []models.Provider{
		{ID: "p1", Specialty: "Dermatology"},
		{ID: "p2", Specialty: "Cardiology"},
	}
	matches, err := Rank(directory, Query{Symptoms: "rash"})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "p1" {
		t.Fatalf("matches = %v, want only p1", matches)
	}
}

func TestRankEmptyDirectory(t *testing.T) {
	matches, err := Rank(nil, Query{Symptoms: "rash"})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("matches = %v, want empty slice", matches)
	}
}

func TestRankFallbackByRating(t *testing.T) {
	// No query fields match and no provider earns a bonus, so every score
	// is zero and the rating fallback kicks in.
	directory := []models.Provider{
		{ID: "p1", Specialty: "Cardiology"},
		{ID: "p2", Specialty: "Neurology"},
		{ID: "p3", Specialty: "Orthopedics"},
		{ID: "p4", Specialty: "ENT"},
	}
	matches, err := Rank(directory, Query{Symptoms: "telepathy"})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(matches) != DefaultLimit {
		t.Fatalf("len(matches) = %d, want %d", len(matches), DefaultLimit)
	}
	for _, m := range matches {
		if m.MatchScore == nil || *m.MatchScore != 0 {
			t.Errorf("provider %s MatchScore = %v, want 0", m.ID, m.MatchScore)
		}
		if !hasReason(m.MatchReasons, "Selected based on high rating") {
			t.Errorf("provider %s reasons = %v", m.ID, m.MatchReasons)
		}
	}
}

func TestRankFallbackPrefersHigherRating(t *testing.T) {
	directory := []models.Provider{
		{ID: "low", Rating: 0},
		{ID: "high", Rating: 0},
	}
	// Rating zero keeps the scores at zero; insertion order is preserved.
	matches, err := Rank(directory, Query{})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].ID != "low" || matches[1].ID != "high" {
		t.Errorf("order = %s, %s; want low, high", matches[0].ID, matches[1].ID)
	}
}

func TestFallback(t *testing.T) {
	directory := []models.Provider{
		{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"},
	}
	matches := Fallback(directory, 0)
	if len(matches) != DefaultLimit {
		t.Fatalf("len(matches) = %d, want %d", len(matches), DefaultLimit)
	}
	for i, m := range matches {
		if m.ID != directory[i].ID {
			t.Errorf("matches[%d].ID = %q, want %q", i, m.ID, directory[i].ID)
		}
		if m.MatchScore == nil || *m.MatchScore != 0 {
			t.Errorf("matches[%d].MatchScore = %v, want 0", i, m.MatchScore)
		}
		if !hasReason(m.MatchReasons, "Selected as fallback") {
			t.Errorf("matches[%d].MatchReasons = %v", i, m.MatchReasons)
		}
	}
}

func TestFallbackEmptyDirectory(t *testing.T) {
	matches := Fallback(nil, 5)
	if matches == nil || len(matches) != 0 {
		t.Fatalf("matches = %v, want empty slice", matches)
	}
}

func TestFirstInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"20 mins", 20, true},
		{"15 years", 15, true},
		{"about 5", 5, true},
		{"soon", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := firstInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("firstInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func hasReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
