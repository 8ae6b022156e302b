package diet

import "github.com/google/uuid"

// AddResult is the outcome of AddFood. When IsDuplicateInstance is set
// the Foods slice is the caller's original list, untouched; callers may
// treat it as a no-op.
type AddResult struct {
	Foods               []FoodInstance
	IsNewFood           bool
	IsDuplicateInstance bool
}

// AddFood appends candidate to the week's instance list, enforcing the
// logging rules: an exact (FoodID, Color, Fermented) duplicate is
// rejected; a repeat of a known FoodID with a different color or
// fermentation is kept but inherits the FirstLogged already recorded
// for that FoodID this week, regardless of the candidate's own logged
// time. The input list is never mutated.
func AddFood(foods []FoodInstance, candidate FoodInstance) AddResult {
	for _, f := range foods {
		if f.FoodID == candidate.FoodID && f.Color == candidate.Color && f.Fermented == candidate.Fermented {
			return AddResult{Foods: foods, IsDuplicateInstance: true}
		}
	}

	candidate.ID = uuid.NewString()
	candidate.FirstLogged = candidate.LoggedAt
	isNew := true
	for _, f := range foods {
		if f.FoodID == candidate.FoodID {
			// All instances of a FoodID share one FirstLogged, so the
			// first match carries the recorded value.
			isNew = false
			candidate.FirstLogged = f.FirstLogged
			break
		}
	}

	out := make([]FoodInstance, len(foods), len(foods)+1)
	copy(out, foods)
	out = append(out, candidate)
	return AddResult{Foods: out, IsNewFood: isNew}
}

// RemoveFood returns a new list without the instance with the given ID.
// Removing an absent ID is not an error.
func RemoveFood(foods []FoodInstance, instanceID string) []FoodInstance {
	out := make([]FoodInstance, 0, len(foods))
	for _, f := range foods {
		if f.ID != instanceID {
			out = append(out, f)
		}
	}
	return out
}

// uniqueFoods reduces the instance list to the first instance of each
// FoodID, preserving insertion order. Scoring goes through Recompute,
// which applies this reduction before summing.
func uniqueFoods(foods []FoodInstance) []FoodInstance {
	seen := make(map[string]bool, len(foods))
	var out []FoodInstance
	for _, f := range foods {
		if seen[f.FoodID] {
			continue
		}
		seen[f.FoodID] = true
		out = append(out, f)
	}
	return out
}

// UniqueFoodIDs returns the set of distinct food identifiers.
func UniqueFoodIDs(foods []FoodInstance) map[string]bool {
	ids := make(map[string]bool, len(foods))
	for _, f := range foods {
		ids[f.FoodID] = true
	}
	return ids
}

// HasFoodBeenLogged reports whether any instance has the given FoodID.
func HasFoodBeenLogged(foods []FoodInstance, foodID string) bool {
	for _, f := range foods {
		if f.FoodID == foodID {
			return true
		}
	}
	return false
}
