package utils

// Nutrients holds an ingredient's composition per 100 g.
// Reflux is a dimensionless reflux-load coefficient; negative values soothe.
type Nutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Kcal    float64 `json:"kcal"`
	Reflux  float64 `json:"reflux"`
}

var ingredients = map[string]Nutrients{
	// dairy & eggs
	"egg_whole":    {Protein: 12.6, Carbs: 1.1, Fat: 10.0, Kcal: 143, Reflux: 0.05},
	"egg_white":    {Protein: 11.0, Carbs: 0.7, Fat: 0.2, Kcal: 52, Reflux: 0.02},
	"milk_2pct":    {Protein: 3.4, Carbs: 4.8, Fat: 2.0, Kcal: 50, Reflux: 0.05},
	"curd_plain":   {Protein: 4.0, Carbs: 4.0, Fat: 3.0, Kcal: 60, Reflux: -0.03},
	"yogurt_plain": {Protein: 10.0, Carbs: 6.0, Fat: 3.0, Kcal: 100, Reflux: -0.05},
	"buttermilk":   {Protein: 3.0, Carbs: 5.0, Fat: 1.0, Kcal: 35, Reflux: -0.02},
	"whey_powder":  {Protein: 80.0, Carbs: 8.0, Fat: 6.0, Kcal: 400, Reflux: 0.05},

	// grains
	"rice_cooked":       {Protein: 2.7, Carbs: 28.0, Fat: 0.3, Kcal: 130, Reflux: 0.00},
	"brown_rice_cooked": {Protein: 2.6, Carbs: 23.0, Fat: 1.0, Kcal: 110, Reflux: 0.00},
	"poha_cooked":       {Protein: 2.0, Carbs: 20.0, Fat: 3.0, Kcal: 115, Reflux: 0.05},
	"upma_cooked":       {Protein: 3.0, Carbs: 18.0, Fat: 4.0, Kcal: 120, Reflux: 0.05},
	"oats_cooked":       {Protein: 2.4, Carbs: 12.0, Fat: 1.4, Kcal: 71, Reflux: -0.05},

	// breads
	"roti":    {Protein: 8.0, Carbs: 45.0, Fat: 3.0, Kcal: 250, Reflux: 0.05},
	"phulka":  {Protein: 8.0, Carbs: 47.0, Fat: 2.5, Kcal: 240, Reflux: 0.05},
	"paratha": {Protein: 7.0, Carbs: 40.0, Fat: 12.0, Kcal: 300, Reflux: 0.15},
	"thepla":  {Protein: 8.0, Carbs: 40.0, Fat: 8.0, Kcal: 260, Reflux: 0.12},
	"bread":   {Protein: 9.0, Carbs: 49.0, Fat: 3.2, Kcal: 265, Reflux: 0.10},

	// legumes
	"dal_cooked":    {Protein: 9.0, Carbs: 20.0, Fat: 0.5, Kcal: 120, Reflux: 0.05},
	"rajma_cooked":  {Protein: 8.5, Carbs: 22.0, Fat: 0.7, Kcal: 127, Reflux: 0.08},
	"chole_cooked":  {Protein: 9.0, Carbs: 27.0, Fat: 2.5, Kcal: 164, Reflux: 0.12},
	"moong_sprouts": {Protein: 3.0, Carbs: 6.0, Fat: 0.2, Kcal: 35, Reflux: 0.02},

	// protein
	"chicken_cooked": {Protein: 27.0, Carbs: 0.0, Fat: 4.0, Kcal: 165, Reflux: 0.05},
	"fish_cooked":    {Protein: 22.0, Carbs: 0.0, Fat: 5.0, Kcal: 130, Reflux: 0.05},
	"paneer":         {Protein: 18.0, Carbs: 2.0, Fat: 20.0, Kcal: 265, Reflux: 0.10},
	"tofu":           {Protein: 8.0, Carbs: 2.0, Fat: 5.0, Kcal: 80, Reflux: 0.03},

	// fats
	"oil":  {Protein: 0.0, Carbs: 0.0, Fat: 100.0, Kcal: 900, Reflux: 0.20},
	"ghee": {Protein: 0.0, Carbs: 0.0, Fat: 100.0, Kcal: 900, Reflux: 0.22},

	// vegetables & curries
	"veg_curry": {Protein: 2.0, Carbs: 8.0, Fat: 4.0, Kcal: 80, Reflux: 0.10},
	"bhaji":     {Protein: 2.5, Carbs: 10.0, Fat: 6.0, Kcal: 105, Reflux: 0.12},
	"sambar":    {Protein: 4.0, Carbs: 10.0, Fat: 2.0, Kcal: 70, Reflux: 0.08},

	// fruit & nuts
	"banana":      {Protein: 1.1, Carbs: 23.0, Fat: 0.3, Kcal: 89, Reflux: -0.03},
	"fruit_mixed": {Protein: 0.8, Carbs: 14.0, Fat: 0.2, Kcal: 60, Reflux: -0.04},
	"nuts_mixed":  {Protein: 18.0, Carbs: 16.0, Fat: 50.0, Kcal: 600, Reflux: 0.10},

	// gujarati snacks
	"dhokla":  {Protein: 7.0, Carbs: 25.0, Fat: 4.0, Kcal: 160, Reflux: 0.10},
	"khandvi": {Protein: 8.0, Carbs: 18.0, Fat: 6.0, Kcal: 160, Reflux: 0.10},
	"fafda":   {Protein: 7.0, Carbs: 40.0, Fat: 18.0, Kcal: 340, Reflux: 0.25},
	"handvo":  {Protein: 8.0, Carbs: 22.0, Fat: 9.0, Kcal: 210, Reflux: 0.18},
	"khakhra": {Protein: 10.0, Carbs: 65.0, Fat: 8.0, Kcal: 360, Reflux: 0.10},
	"undhiyu": {Protein: 3.0, Carbs: 12.0, Fat: 7.0, Kcal: 120, Reflux: 0.12},
	"sev":     {Protein: 12.0, Carbs: 50.0, Fat: 25.0, Kcal: 470, Reflux: 0.25},

	// south indian
	"idli": {Protein: 4.0, Carbs: 20.0, Fat: 1.0, Kcal: 100, Reflux: 0.05},
	"dosa": {Protein: 5.0, Carbs: 25.0, Fat: 6.0, Kcal: 170, Reflux: 0.10},

	// street food
	"pav_bhaji": {Protein: 6.0, Carbs: 25.0, Fat: 8.0, Kcal: 190, Reflux: 0.25},
	"vada_pav":  {Protein: 6.0, Carbs: 30.0, Fat: 12.0, Kcal: 250, Reflux: 0.30},
	"samosa":    {Protein: 5.0, Carbs: 30.0, Fat: 12.0, Kcal: 260, Reflux: 0.30},

	// fast food
	"pizza":  {Protein: 11.0, Carbs: 33.0, Fat: 10.0, Kcal: 285, Reflux: 0.30},
	"burger": {Protein: 13.0, Carbs: 24.0, Fat: 13.0, Kcal: 250, Reflux: 0.30},
	"fries":  {Protein: 3.4, Carbs: 41.0, Fat: 15.0, Kcal: 312, Reflux: 0.35},

	// drinks
	"black_coffee": {Protein: 0.1, Carbs: 0.0, Fat: 0.0, Kcal: 2, Reflux: 0.20},
	"tea":          {Protein: 0.5, Carbs: 2.0, Fat: 0.5, Kcal: 15, Reflux: 0.10},
}

// LookupIngredient returns the per-100 g profile of a named ingredient.
func LookupIngredient(name string) (Nutrients, bool) {
	n, ok := ingredients[name]
	return n, ok
}
