// Package ranking scores shelter dogs against rescue-profile criteria so
// results can be ordered by how well each dog fits the selection.
package ranking

import (
	"sort"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// Scoring weights. Breed dominates, then age, then sex; a full match
// totals 100.
const (
	BreedWeight = 50
	AgeWeight   = 30
	SexWeight   = 20
)

// Breakdown is the per-dimension score of one record.
type Breakdown struct {
	BreedMatch int `json:"breed_match"`
	AgeMatch   int `json:"age_match"`
	SexMatch   int `json:"sex_match"`
}

// Total sums the component scores.
func (b Breakdown) Total() int {
	return b.BreedMatch + b.AgeMatch + b.SexMatch
}

// RankedAnimal is a record with its match score attached.
type RankedAnimal struct {
	domain.Animal
	MatchScore     int       `json:"match_score"`
	ScoreBreakdown Breakdown `json:"score_breakdown"`
}

// Score evaluates a single record against the criteria.
// Each dimension is binary: full weight on match, zero otherwise. Age bounds
// are inclusive; a missing or non-numeric age scores zero.
func Score(a domain.Animal, c domain.Criteria) Breakdown {
	return Breakdown{
		BreedMatch: scoreBreed(a, c),
		AgeMatch:   scoreAge(a, c),
		SexMatch:   scoreSex(a, c),
	}
}

// Rank sorts records by total score descending, preserving the incoming
// order for ties, and attaches the score breakdown to each record.
func Rank(animals []domain.Animal, c domain.Criteria) []RankedAnimal {
	ranked := make([]RankedAnimal, len(animals))
	for i, a := range animals {
		b := Score(a, c)
		ranked[i] = RankedAnimal{Animal: a, MatchScore: b.Total(), ScoreBreakdown: b}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

func scoreBreed(a domain.Animal, c domain.Criteria) int {
	if a.Breed == "" {
		return 0
	}
	for _, b := range c.PreferredBreeds {
		if a.Breed == b {
			return BreedWeight
		}
	}
	return 0
}

func scoreAge(a domain.Animal, c domain.Criteria) int {
	if c.MaxWeeks <= 0 {
		return 0
	}
	if a.AgeWeeks == nil {
		return 0
	}
	if *a.AgeWeeks >= c.MinWeeks && *a.AgeWeeks <= c.MaxWeeks {
		return AgeWeight
	}
	return 0
}

func scoreSex(a domain.Animal, c domain.Criteria) int {
	if c.PreferredSex == "" || a.SexUponOutcome == "" {
		return 0
	}
	if a.SexUponOutcome == c.PreferredSex {
		return SexWeight
	}
	return 0
}
