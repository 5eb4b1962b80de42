package pricing

import (
	"fmt"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Age group keys of the daily recommendation table (USDA MyPlate minimums, 2020-2025).
const (
	Children2to3  = "children_2-3"
	Children4to8  = "children_4-8"
	Children9to13 = "children_9-13"
	Girls14to18   = "girls_14-18"
	Boys14to18    = "boys_14-18"
	Women19to30   = "women_19-30"
	Women31to50   = "women_31-50"
	Women51Plus   = "women_51+"
	Men19to30     = "men_19-30"
	Men31to50     = "men_31-50"
	Men51Plus     = "men_51+"
)

// Composite groups used by the calculator, averaged from the table above.
const (
	CompositeAdult = "adult"
	CompositeChild = "child"
	CompositeTeen  = "teen"
)

var ageGroups = []entity.AgeGroup{
	{Key: Children2to3, Label: "Children 2-3", FruitCups: 1, VegetableCups: 1},
	{Key: Children4to8, Label: "Children 4-8", FruitCups: 1.5, VegetableCups: 1.5},
	{Key: Children9to13, Label: "Children 9-13", FruitCups: 2, VegetableCups: 2},
	{Key: Girls14to18, Label: "Girls 14-18", FruitCups: 2, VegetableCups: 2.5},
	{Key: Boys14to18, Label: "Boys 14-18", FruitCups: 2.5, VegetableCups: 3},
	{Key: Women19to30, Label: "Women 19-30", FruitCups: 2, VegetableCups: 2.5},
	{Key: Women31to50, Label: "Women 31-50", FruitCups: 1.5, VegetableCups: 2.5},
	{Key: Women51Plus, Label: "Women 51+", FruitCups: 1.5, VegetableCups: 2},
	{Key: Men19to30, Label: "Men 19-30", FruitCups: 2, VegetableCups: 3},
	{Key: Men31to50, Label: "Men 31-50", FruitCups: 2, VegetableCups: 3},
	{Key: Men51Plus, Label: "Men 51+", FruitCups: 2, VegetableCups: 2.5},
}

var compositeMembers = map[string][]string{
	CompositeAdult: {Men31to50, Women31to50},
	CompositeChild: {Children2to3, Children4to8, Children9to13},
	CompositeTeen:  {Girls14to18, Boys14to18},
}

var householdCatalogue = []entity.HouseholdType{
	{Key: "single_adult", Description: "Single Adult", Members: []string{Men31to50}},
	{Key: "couple_no_kids", Description: "Couple (No Children)", Members: []string{Men31to50, Women31to50}},
	{Key: "family_2adults_2children", Description: "Family (2 Adults, 2 Children)",
		Members: []string{Men31to50, Women31to50, Children4to8, Children9to13}},
	{Key: "single_parent_2children", Description: "Single Parent (2 Children)",
		Members: []string{Women31to50, Children4to8, Children9to13}},
}

// AgeGroups returns a copy of the recommendation table.
func AgeGroups() []entity.AgeGroup {
	out := make([]entity.AgeGroup, len(ageGroups))
	copy(out, ageGroups)
	return out
}

// HouseholdCatalogue returns a copy of the fixed household catalogue.
func HouseholdCatalogue() []entity.HouseholdType {
	out := make([]entity.HouseholdType, len(householdCatalogue))
	for i, h := range householdCatalogue {
		h.Members = append([]string(nil), h.Members...)
		out[i] = h
	}
	return out
}

// LookupAgeGroup resolves a table key or a composite key (adult, child, teen).
func LookupAgeGroup(key string) (entity.AgeGroup, error) {
	for _, g := range ageGroups {
		if g.Key == key {
			return g, nil
		}
	}

	members, ok := compositeMembers[key]
	if !ok {
		return entity.AgeGroup{}, fmt.Errorf("%w: %q", ErrUnknownAgeGroup, key)
	}

	composite := entity.AgeGroup{Key: key, Label: key}
	for _, m := range members {
		g, err := LookupAgeGroup(m)
		if err != nil {
			return entity.AgeGroup{}, err
		}
		composite.FruitCups += g.FruitCups
		composite.VegetableCups += g.VegetableCups
	}
	composite.FruitCups /= float64(len(members))
	composite.VegetableCups /= float64(len(members))
	return composite, nil
}

// DailyTarget sums fruit and vegetable cups over a member list.
func DailyTarget(members []string) (fruit, vegetable float64, err error) {
	for _, m := range members {
		g, err := LookupAgeGroup(m)
		if err != nil {
			return 0, 0, err
		}
		fruit += g.FruitCups
		vegetable += g.VegetableCups
	}
	return fruit, vegetable, nil
}
