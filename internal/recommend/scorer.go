package recommend

import (
	"fmt"
	"math"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

type ReasonCode string

const (
	ReasonSpicinessMatch  ReasonCode = "SPICINESS_MATCH"
	ReasonSaltinessMatch  ReasonCode = "SALTINESS_MATCH"
	ReasonSweetnessMatch  ReasonCode = "SWEETNESS_MATCH"
	ReasonMeatForVeg      ReasonCode = "MEAT_FOR_VEGETARIAN"
	ReasonVegForMeat      ReasonCode = "VEGETARIAN_FOR_MEAT"
	ReasonDessertFollowUp ReasonCode = "DESSERT_FOLLOW_UP"
)

// Factor weights.
const (
	MeatForVegPenalty = -0.5
	VegForMeatPenalty = -0.15
	DessertBonus      = 0.2

	dessertProfileMax = 0.3
	dessertItemMin    = 0.7
	vegetarianCut     = 0.5
)

// Reason explains one factor's contribution to a score.
type Reason struct {
	Code    ReasonCode
	Message string
	Delta   float64
}

// Scored is a catalog item with its total score and the factors behind it.
type Scored struct {
	Item    domain.MenuItem
	Score   float64
	Reasons []Reason
}

type factor func(item domain.MenuItem, profile domain.Taste) (float64, *Reason)

var factors = []factor{
	scoreSpiciness,
	scoreSaltiness,
	scoreSweetness,
	scoreMeatForVeg,
	scoreVegForMeat,
	scoreDessert,
}

// Score sums every factor for item against the cart profile.
func Score(item domain.MenuItem, profile domain.Taste) Scored {
	result := Scored{Item: item}
	for _, f := range factors {
		delta, reason := f(item, profile)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

func closeness(code ReasonCode, name string, item, profile float64) (float64, *Reason) {
	delta := 1 - math.Abs(item-profile)
	return delta, &Reason{
		Code:    code,
		Message: fmt.Sprintf("%s %.2f vs order %.2f", name, item, profile),
		Delta:   delta,
	}
}

func scoreSpiciness(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	return closeness(ReasonSpicinessMatch, "spiciness", item.Taste.Spiciness, p.Spiciness)
}

func scoreSaltiness(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	return closeness(ReasonSaltinessMatch, "saltiness", item.Taste.Saltiness, p.Saltiness)
}

func scoreSweetness(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	return closeness(ReasonSweetnessMatch, "sweetness", item.Taste.Sweetness, p.Sweetness)
}

func scoreMeatForVeg(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	if p.Vegetarian > vegetarianCut && item.Taste.Vegetarian < vegetarianCut {
		return MeatForVegPenalty, &Reason{
			Code:    ReasonMeatForVeg,
			Message: "non-vegetarian dish for a vegetarian order",
			Delta:   MeatForVegPenalty,
		}
	}
	return 0, nil
}

func scoreVegForMeat(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	if p.Vegetarian < vegetarianCut && item.Taste.Vegetarian > vegetarianCut {
		return VegForMeatPenalty, &Reason{
			Code:    ReasonVegForMeat,
			Message: "vegetarian dish for a non-vegetarian order",
			Delta:   VegForMeatPenalty,
		}
	}
	return 0, nil
}

func scoreDessert(item domain.MenuItem, p domain.Taste) (float64, *Reason) {
	if p.Sweetness < dessertProfileMax && item.Taste.Sweetness > dessertItemMin {
		return DessertBonus, &Reason{
			Code:    ReasonDessertFollowUp,
			Message: "dessert after a savory order",
			Delta:   DessertBonus,
		}
	}
	return 0, nil
}
