package ranking

import (
	"testing"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

func age(w float64) *float64 { return &w }

func TestScore_PerfectMatch(t *testing.T) {
	dog := domain.Animal{
		Breed:          "Labrador Retriever Mix",
		SexUponOutcome: "Intact Female",
		AgeWeeks:       age(52),
	}

	b := Score(dog, domain.CriteriaFor(domain.FilterWater))
	if b.Total() != 100 {
		t.Errorf("total: got %d, want 100", b.Total())
	}
	if b.BreedMatch != BreedWeight || b.AgeMatch != AgeWeight || b.SexMatch != SexWeight {
		t.Errorf("breakdown: got %+v", b)
	}
}

func TestScore_PartialMatches(t *testing.T) {
	crit := domain.CriteriaFor(domain.FilterWater)

	tests := []struct {
		name string
		dog  domain.Animal
		want int
	}{
		{
			"wrong breed",
			domain.Animal{Breed: "Terrier Mix", SexUponOutcome: "Intact Female", AgeWeeks: age(52)},
			AgeWeight + SexWeight,
		},
		{
			"age out of range",
			domain.Animal{Breed: "Newfoundland", SexUponOutcome: "Intact Female", AgeWeeks: age(400)},
			BreedWeight + SexWeight,
		},
		{
			"missing age",
			domain.Animal{Breed: "Newfoundland", SexUponOutcome: "Intact Female"},
			BreedWeight + SexWeight,
		},
		{
			"wrong sex",
			domain.Animal{Breed: "Newfoundland", SexUponOutcome: "Intact Male", AgeWeeks: age(52)},
			BreedWeight + AgeWeight,
		},
		{
			"no match at all",
			domain.Animal{Breed: "Terrier Mix", SexUponOutcome: "Neutered Male", AgeWeeks: age(400)},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.dog, crit).Total(); got != tt.want {
				t.Errorf("total: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_InclusiveAgeBounds(t *testing.T) {
	crit := domain.CriteriaFor(domain.FilterWater)

	for _, w := range []float64{26, 156} {
		dog := domain.Animal{AgeWeeks: age(w)}
		if b := Score(dog, crit); b.AgeMatch != AgeWeight {
			t.Errorf("age %g must be inside the inclusive range", w)
		}
	}
	for _, w := range []float64{25.9, 156.1} {
		dog := domain.Animal{AgeWeeks: age(w)}
		if b := Score(dog, crit); b.AgeMatch != 0 {
			t.Errorf("age %g must be outside the range", w)
		}
	}
}

func TestScore_ZeroCriteria(t *testing.T) {
	dog := domain.Animal{Breed: "Newfoundland", SexUponOutcome: "Intact Female", AgeWeeks: age(52)}
	if got := Score(dog, domain.Criteria{}).Total(); got != 0 {
		t.Errorf("zero criteria must score 0, got %d", got)
	}
}

func TestRank_OrderAndBreakdown(t *testing.T) {
	dogs := []domain.Animal{
		{Name: "partial", Breed: "Terrier Mix", SexUponOutcome: "Intact Female", AgeWeeks: age(50)},
		{Name: "perfect", Breed: "Newfoundland", SexUponOutcome: "Intact Female", AgeWeeks: age(52)},
		{Name: "none", Breed: "Poodle", SexUponOutcome: "Neutered Male"},
	}

	ranked := Rank(dogs, domain.CriteriaFor(domain.FilterWater))

	if ranked[0].Name != "perfect" || ranked[0].MatchScore != 100 {
		t.Errorf("first: got %s (%d)", ranked[0].Name, ranked[0].MatchScore)
	}
	if ranked[1].Name != "partial" {
		t.Errorf("second: got %s", ranked[1].Name)
	}
	if ranked[2].Name != "none" || ranked[2].MatchScore != 0 {
		t.Errorf("last: got %s (%d)", ranked[2].Name, ranked[2].MatchScore)
	}

	if ranked[0].ScoreBreakdown.BreedMatch != BreedWeight {
		t.Errorf("breakdown not attached: %+v", ranked[0].ScoreBreakdown)
	}
}

func TestRank_StableTies(t *testing.T) {
	dogs := []domain.Animal{
		{Name: "first", Breed: "Newfoundland"},
		{Name: "second", Breed: "Bloodhound"},
		{Name: "third", Breed: "Poodle"},
	}

	// No criteria: everyone ties at 0; incoming order must be preserved.
	ranked := Rank(dogs, domain.Criteria{})
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, ranked[i].Name, want)
		}
	}
}
