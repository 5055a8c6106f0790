package utils

import "sort"

// Portion is one ingredient of a recipe at its reference weight.
type Portion struct {
	Ingredient string  `json:"ingredient"`
	Grams      float64 `json:"grams"`
}

var recipes = map[string][]Portion{
	"omelette":      {{"egg_whole", 120}, {"oil", 5}},
	"boiled_eggs_2": {{"egg_whole", 100}},
	"oats_bowl":     {{"oats_cooked", 300}, {"milk_2pct", 200}, {"banana", 120}},
	"poha":          {{"poha_cooked", 300}, {"oil", 5}},
	"upma":          {{"upma_cooked", 300}, {"oil", 5}},
	"idli_sambar":   {{"idli", 200}, {"sambar", 250}},
	"dosa_sambar":   {{"dosa", 180}, {"sambar", 250}},

	"dal_rice":       {{"dal_cooked", 250}, {"rice_cooked", 250}, {"oil", 5}},
	"rajma_rice":     {{"rajma_cooked", 250}, {"rice_cooked", 250}, {"oil", 5}},
	"chole_rice":     {{"chole_cooked", 250}, {"rice_cooked", 250}, {"oil", 5}},
	"roti_veg_curry": {{"roti", 160}, {"veg_curry", 250}},
	"roti_dal":       {{"roti", 160}, {"dal_cooked", 250}},
	"paratha_curd":   {{"paratha", 180}, {"curd_plain", 200}},
	"thepla_curd":    {{"thepla", 160}, {"curd_plain", 200}},

	"egg_curry":          {{"egg_whole", 120}, {"veg_curry", 200}, {"oil", 10}},
	"chicken_curry_rice": {{"chicken_cooked", 150}, {"veg_curry", 200}, {"rice_cooked", 250}, {"oil", 10}},
	"biryani_chicken":    {{"rice_cooked", 300}, {"chicken_cooked", 150}, {"oil", 12}},
	"paneer_curry_roti":  {{"paneer", 150}, {"veg_curry", 200}, {"roti", 160}},
	"tofu_curry_roti":    {{"tofu", 180}, {"veg_curry", 200}, {"roti", 160}},

	"dhokla_plate":  {{"dhokla", 200}},
	"khandvi_plate": {{"khandvi", 200}},
	"handvo_slice":  {{"handvo", 180}},
	"fafda":         {{"fafda", 120}},
	"khakhra_snack": {{"khakhra", 60}},
	"undhiyu_roti":  {{"undhiyu", 300}, {"roti", 160}},
	"sev_snack":     {{"sev", 40}},

	"pav_bhaji": {{"pav_bhaji", 350}},
	"vada_pav":  {{"vada_pav", 200}},
	"samosa":    {{"samosa", 150}},

	"protein_shake":     {{"whey_powder", 30}, {"milk_2pct", 250}},
	"banana_milk_shake": {{"milk_2pct", 350}, {"banana", 180}},
	"curd_bowl":         {{"curd_plain", 300}, {"banana", 120}, {"nuts_mixed", 25}},

	"pizza":  {{"pizza", 250}},
	"burger": {{"burger", 220}},
	"fries":  {{"fries", 180}},
}

// Meal categories, in display order.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

var mealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

var dishCategories = map[string][]string{
	MealBreakfast: {
		"omelette", "boiled_eggs_2", "oats_bowl", "poha", "upma", "idli_sambar", "dosa_sambar",
		"protein_shake", "banana_milk_shake",
	},
	MealLunch: {
		"dal_rice", "rajma_rice", "chole_rice", "roti_veg_curry", "roti_dal", "egg_curry",
		"chicken_curry_rice", "biryani_chicken", "paneer_curry_roti", "tofu_curry_roti",
	},
	MealDinner: {
		"dal_rice", "roti_veg_curry", "roti_dal", "egg_curry", "chicken_curry_rice",
		"paneer_curry_roti", "tofu_curry_roti", "paratha_curd", "thepla_curd",
	},
	MealSnacks: {
		"dhokla_plate", "khandvi_plate", "handvo_slice", "khakhra_snack", "sev_snack", "fafda",
		"pav_bhaji", "vada_pav", "samosa", "pizza", "burger", "fries", "curd_bowl",
	},
}

// MealTypes returns the meal categories in display order.
func MealTypes() []string {
	return append([]string(nil), mealTypes...)
}

// IsMealType reports whether s is one of the fixed meal categories.
func IsMealType(s string) bool {
	_, ok := dishCategories[s]
	return ok
}

// LookupRecipe returns a copy of the dish's portions.
func LookupRecipe(dish string) ([]Portion, bool) {
	r, ok := recipes[dish]
	if !ok {
		return nil, false
	}
	return append([]Portion(nil), r...), true
}

// DishNames lists every known dish, sorted.
func DishNames() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DishesFor lists the dishes offered for a meal category.
// An unknown category falls back to the full catalogue.
func DishesFor(mealType string) []string {
	if dishes, ok := dishCategories[mealType]; ok {
		return append([]string(nil), dishes...)
	}
	return DishNames()
}

// MealTypeAt suggests a meal category for an HH:MM clock time.
func MealTypeAt(hhmm string) string {
	switch {
	case hhmm < "11:00":
		return MealBreakfast
	case hhmm < "15:00":
		return MealLunch
	case hhmm < "18:00":
		return MealSnacks
	default:
		return MealDinner
	}
}
