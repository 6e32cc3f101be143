package domain

import "fmt"

// FilterType selects a rescue-training profile for filtering and ranking.
type FilterType string

const (
	// FilterAll disables filtering and ranking criteria.
	FilterAll FilterType = "all"
	// FilterWater selects dogs suited to water rescue.
	FilterWater FilterType = "water"
	// FilterMountain selects dogs suited to mountain and wilderness rescue.
	FilterMountain FilterType = "mountain"
	// FilterDisaster selects dogs suited to disaster and individual tracking.
	FilterDisaster FilterType = "disaster"
)

// FilterTypes is the whitelist of accepted filter values, in display order.
var FilterTypes = []FilterType{FilterAll, FilterWater, FilterMountain, FilterDisaster}

// ParseFilterType validates raw input against the whitelist so that
// arbitrary strings never reach the database layer.
func ParseFilterType(raw string) (FilterType, error) {
	for _, ft := range FilterTypes {
		if raw == string(ft) {
			return ft, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
}

// Criteria describes the dogs a rescue profile is looking for.
// Zero value means no criteria (the "all" profile).
type Criteria struct {
	PreferredBreeds []string
	MinWeeks        float64
	MaxWeeks        float64
	PreferredSex    string
}

// IsZero reports whether no criteria are set.
func (c Criteria) IsZero() bool {
	return len(c.PreferredBreeds) == 0 && c.MinWeeks == 0 && c.MaxWeeks == 0 && c.PreferredSex == ""
}

// CriteriaFor maps a rescue profile to its matching criteria.
// Age bounds are inclusive, in weeks.
func CriteriaFor(ft FilterType) Criteria {
	switch ft {
	case FilterWater:
		return Criteria{
			PreferredBreeds: []string{
				"Labrador Retriever Mix",
				"Chesapeake Bay Retriever",
				"Newfoundland",
			},
			MinWeeks:     26,  // 6 months
			MaxWeeks:     156, // 3 years
			PreferredSex: "Intact Female",
		}
	case FilterMountain:
		return Criteria{
			PreferredBreeds: []string{
				"German Shepherd",
				"Alaskan Malamute",
				"Old English Sheepdog",
				"Siberian Husky",
				"Rottweiler",
			},
			MinWeeks:     26,
			MaxWeeks:     156,
			PreferredSex: "Intact Male",
		}
	case FilterDisaster:
		return Criteria{
			PreferredBreeds: []string{
				"Doberman Pinscher",
				"German Shepherd",
				"Golden Retriever",
				"Bloodhound",
				"Rottweiler",
			},
			MinWeeks:     20,  // 5 months
			MaxWeeks:     300, // 7 years
			PreferredSex: "Intact Male",
		}
	default:
		return Criteria{}
	}
}
