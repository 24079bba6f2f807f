package domain

// CoffeeOption is one entry of the drink catalog.
type CoffeeOption struct {
	ID          string
	Name        string
	DisplayName string
	UsesMilk    bool
	Enabled     bool
	SortOrder   int
}

// DefaultCatalog returns the fixed event menu. Production seeds the same
// rows through migrations; the in-memory repository seeds from here.
func DefaultCatalog() []CoffeeOption {
	return []CoffeeOption{
		{ID: "1", Name: "Espresso", DisplayName: "1 – Espresso", UsesMilk: false, Enabled: true, SortOrder: 1},
		{ID: "2", Name: "Americano", DisplayName: "2 – Americano", UsesMilk: false, Enabled: true, SortOrder: 2},
		{ID: "3", Name: "Flat White", DisplayName: "3 – Flat White", UsesMilk: true, Enabled: true, SortOrder: 3},
		{ID: "4", Name: "Latte", DisplayName: "4 – Latte", UsesMilk: true, Enabled: true, SortOrder: 4},
		{ID: "5", Name: "Iced Americano", DisplayName: "5 – Iced Americano", UsesMilk: false, Enabled: true, SortOrder: 5},
		{ID: "6", Name: "Iced Latte", DisplayName: "6 – Iced Latte", UsesMilk: true, Enabled: true, SortOrder: 6},
		{ID: "7", Name: "Iced Matcha Latte", DisplayName: "7 – Iced Matcha Latte", UsesMilk: true, Enabled: true, SortOrder: 7},
		{ID: "8", Name: "Iced Horchata Matcha", DisplayName: "8 – Iced Horchata Matcha", UsesMilk: true, Enabled: true, SortOrder: 8},
		{ID: "9", Name: "Iced Horchata Coffee", DisplayName: "9 – Iced Horchata Coffee", UsesMilk: true, Enabled: true, SortOrder: 9},
	}
}
