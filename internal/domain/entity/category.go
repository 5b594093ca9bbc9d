package entity

// Category is a display category with its icon and color.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultCategoryName is used when an expense is saved without a category.
const DefaultCategoryName = "Other"

const (
	fallbackCategoryIcon  = "ellipsis-horizontal-outline"
	fallbackCategoryColor = "#AEB6BF"
)

// ExpenseCategories are the categories offered for daily expenses.
var ExpenseCategories = []Category{
	{Name: "Food", Icon: "restaurant-outline", Color: "#FF6B6B"},
	{Name: "Transport", Icon: "car-outline", Color: "#4ECDC4"},
	{Name: "Shopping", Icon: "bag-outline", Color: "#45B7D1"},
	{Name: "Entertainment", Icon: "film-outline", Color: "#96CEB4"},
	{Name: "Health", Icon: "heart-outline", Color: "#FFEAA7"},
	{Name: "Housing", Icon: "home-outline", Color: "#DDA0DD"},
	{Name: "Utilities", Icon: "flash-outline", Color: "#98D8C8"},
	{Name: "Education", Icon: "book-outline", Color: "#F7DC6F"},
	{Name: "Subscriptions", Icon: "card-outline", Color: "#BB8FCE"},
	{Name: "Other", Icon: fallbackCategoryIcon, Color: fallbackCategoryColor},
}

// FixedCategories are the categories offered for fixed expenses.
var FixedCategories = []Category{
	{Name: "Rent", Icon: "home-outline", Color: "#DDA0DD"},
	{Name: "Utilities", Icon: "flash-outline", Color: "#98D8C8"},
	{Name: "Subscriptions", Icon: "card-outline", Color: "#BB8FCE"},
	{Name: "Insurance", Icon: "shield-outline", Color: "#4ECDC4"},
	{Name: "Internet", Icon: "wifi-outline", Color: "#45B7D1"},
	{Name: "Phone", Icon: "call-outline", Color: "#96CEB4"},
	{Name: "Other", Icon: fallbackCategoryIcon, Color: fallbackCategoryColor},
}

// LookupCategory returns the display attributes of an expense category. Unknown names get
// the fallback icon and color.
func LookupCategory(name string) Category {
	for _, c := range ExpenseCategories {
		if c.Name == name {
			return c
		}
	}
	return Category{Name: name, Icon: fallbackCategoryIcon, Color: fallbackCategoryColor}
}
