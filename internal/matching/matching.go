// Package matching ranks the provider directory against a patient's
// symptoms, insurance, and location. It is a pure computation over the
// directory snapshot handed to it; nothing here touches storage.
package matching

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/smartcare/smartcare-api/internal/models"
)

const DefaultLimit = 3

// Query carries the match parameters. Urgency is accepted for interface
// compatibility but does not influence the score.
type Query struct {
	Symptoms  string // comma-separated free text
	Insurance string
	Location  string
	Urgency   string
	Limit     int
}

// symptomSpecialties maps a lower-cased symptom to the specialties that
// treat it. Specialties not listed for a symptom contribute nothing.
var symptomSpecialties = map[string][]string{
	"rash":                {"dermatology", "general physician", "internal medicine"},
	"diarrhea":            {"gastroenterology", "internal medicine", "general physician", "family medicine"},
	"fever":               {"internal medicine", "general physician", "family medicine", "pediatrics"},
	"cough":               {"pulmonologist", "internal medicine", "general physician", "family medicine"},
	"headache":            {"neurology", "internal medicine", "general physician"},
	"chest pain":          {"cardiology", "internal medicine", "general physician"},
	"back pain":           {"orthopedics", "general physician", "internal medicine"},
	"joint pain":          {"orthopedics", "rheumatology", "general physician"},
	"fatigue":             {"internal medicine", "general physician", "family medicine"},
	"shortness of breath": {"pulmonologist", "cardiology", "internal medicine"},
	"abdominal pain":      {"gastroenterology", "internal medicine", "general physician"},
	"dizziness":           {"neurology", "internal medicine", "general physician"},
	"sore throat":         {"ent", "internal medicine", "general physician"},
	"vomiting":            {"gastroenterology", "internal medicine", "general physician"},
	"nausea":              {"gastroenterology", "internal medicine", "general physician"},
}

var generalistTerms = []string{"general physician", "internal medicine", "family medicine"}

var digits = regexp.MustCompile(`\d+`)

// Rank scores every provider in the directory and returns the top matches,
// highest score first. Ties keep the directory's relative order. Providers
// scoring zero are dropped; if nothing scores above zero the top providers by
// raw rating are returned instead, each annotated with score 0. A panic in
// the scoring pass is reported as an error so the caller can degrade to the
// unscored fallback.
func Rank(directory []models.Provider, q Query) (matches []models.Provider, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider scoring failed: %v", r)
		}
	}()

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(directory) == 0 {
		return []models.Provider{}, nil
	}

	scored := make([]models.Provider, 0, len(directory))
	for _, p := range directory {
		score, reasons := scoreProvider(p, q)
		if score > 0 {
			s := score
			p.MatchScore = &s
			p.MatchReasons = reasons
			scored = append(scored, p)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].MatchScore > *scored[j].MatchScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	if len(scored) == 0 {
		return fallbackByRating(directory, limit), nil
	}
	return scored, nil
}

// scoreProvider computes the 0-100 score: insurance up to 35, location up to
// 20, symptom/specialty up to 35, plus a bonus capped so the total never
// exceeds 100.
func scoreProvider(p models.Provider, q Query) (float64, []string) {
	var reasons []string
	var insuranceScore, locationScore, symptomScore float64

	if q.Insurance != "" && len(p.AcceptedInsurances) > 0 {
		insuranceLower := strings.ToLower(q.Insurance)
		accepted := make([]string, len(p.AcceptedInsurances))
		for i, ins := range p.AcceptedInsurances {
			accepted[i] = strings.ToLower(ins)
		}
		exact := false
		for _, ins := range accepted {
			if ins == insuranceLower {
				exact = true
				break
			}
		}
		if exact {
			insuranceScore = 35
			reasons = append(reasons, "Accepts "+q.Insurance)
		} else {
			for _, ins := range accepted {
				if strings.Contains(ins, insuranceLower) || strings.Contains(insuranceLower, ins) {
					insuranceScore = 30
					reasons = append(reasons, "Accepts similar insurance")
					break
				}
			}
		}
	}

	if q.Location != "" && p.City != "" {
		locationLower := strings.ToLower(q.Location)
		cityLower := strings.ToLower(p.City)
		if locationLower == cityLower {
			locationScore = 20
			reasons = append(reasons, "Located in "+p.City)
		} else if strings.Contains(cityLower, locationLower) || strings.Contains(locationLower, cityLower) {
			locationScore = 10
			reasons = append(reasons, "Near "+p.City)
		}
	}

	if q.Symptoms != "" && p.Specialty != "" {
		specialtyLower := strings.ToLower(p.Specialty)
		for _, raw := range strings.Split(q.Symptoms, ",") {
			symptom := strings.ToLower(strings.TrimSpace(raw))
			specialties, ok := symptomSpecialties[symptom]
			if !ok {
				continue
			}
			if containsString(specialties, specialtyLower) {
				symptomScore = math.Max(symptomScore, 35)
				reasons = append(reasons, "Specializes in "+symptom+" treatment")
			} else if isGeneralist(specialtyLower) {
				symptomScore = math.Max(symptomScore, 30)
				reasons = append(reasons, "Can treat "+symptom)
			}
		}
	}

	base := insuranceScore + locationScore + symptomScore

	var bonus float64
	if p.Rating > 0 {
		bonus += math.Min(p.Rating*2, 6)
		reasons = append(reasons, fmt.Sprintf("High rating: %g", p.Rating))
	}
	if n, ok := firstInt(p.WaitTime); ok && n <= 10 {
		bonus += 2
		reasons = append(reasons, "Quick wait time")
	}
	if n, ok := firstInt(p.Experience); ok && n >= 15 {
		bonus += 2
		reasons = append(reasons, "Highly experienced")
	}

	// Cap the bonus so the total never exceeds 100.
	maxBonus := math.Max(0, 100-base)
	total := base + math.Min(bonus, maxBonus)
	return math.Round(total*100) / 100, reasons
}

// fallbackByRating handles the case where no provider scored above zero: the
// top providers by raw rating are returned with a zero score.
func fallbackByRating(directory []models.Provider, limit int) []models.Provider {
	ranked := make([]models.Provider, len(directory))
	copy(ranked, directory)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]models.Provider, 0, len(ranked))
	for _, p := range ranked {
		zero := 0.0
		p.MatchScore = &zero
		p.MatchReasons = []string{"Selected based on high rating"}
		out = append(out, p)
	}
	return out
}

// Fallback is the last-resort result when the scoring pass itself failed:
// providers straight from the directory, unscored, without retrying.
func Fallback(directory []models.Provider, limit int) []models.Provider {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(directory) > limit {
		directory = directory[:limit]
	}

	out := make([]models.Provider, 0, len(directory))
	for _, p := range directory {
		zero := 0.0
		p.MatchScore = &zero
		p.MatchReasons = []string{"Selected as fallback"}
		out = append(out, p)
	}
	return out
}

func isGeneralist(specialtyLower string) bool {
	for _, term := range generalistTerms {
		if strings.Contains(specialtyLower, term) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// firstInt extracts the first run of digits from free text such as
// "20 mins" or "15 years".
func firstInt(s string) (int, bool) {
	m := digits.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
