package finance

import "strings"

// The six fixed expense categories.
const (
	CategoryPurchases    = "Purchases/Inputs"
	CategorySalaries     = "Salaries"
	CategoryMaintenance  = "Maintenance/Repairs"
	CategoryAnimalHealth = "Animal Health"
	CategoryFuel         = "Fuel"
	CategoryOther        = "Other Expenses"
)

// Keyword buckets in strict priority order: the first bucket with any
// matching substring wins. Each bucket keeps the French terms the farm's
// historical ledger descriptions use alongside their English equivalents.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryPurchases, []string{"achat", "intrant", "nourriture", "semence", "purchase", "input", "feed", "seed"}},
	{CategorySalaries, []string{"salaire", "main d'oeuvre", "salary", "labor"}},
	{CategoryMaintenance, []string{"reparation", "entretien", "maintenance", "repair", "upkeep"}},
	{CategoryAnimalHealth, []string{"veterinaire", "medicament", "vaccin", "veterinary", "medicine", "vaccine"}},
	{CategoryFuel, []string{"carburant", "essence", "fuel", "gasoline"}},
}

// categorizeExpense buckets a description by case-insensitive substring
// match, first match wins.
func categorizeExpense(description string) string {
	lower := strings.ToLower(description)
	for _, bucket := range categoryKeywords {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.category
			}
		}
	}
	return CategoryOther
}
