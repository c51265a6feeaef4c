// Package recipe defines the domain entities shared by every other package.
// recipe depends on nothing else in the module.
package recipe

// Ingredient is a single recipe ingredient. Quantity is nil for "to taste"
// style amounts with no number attached; rescaling preserves nil.
type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

// Recipe is the full catalog entity.
//
// Key is set only on user-generated recipes; it is omitted from serialized
// output when empty so catalog-sourced snapshots never carry a blank key.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"sourceUrl"`
	Image       string       `json:"image"`
	Servings    int          `json:"servings"`
	CookingTime int          `json:"cookingTime"`
	Ingredients []Ingredient `json:"ingredients"`
	Key         string       `json:"key,omitempty"`
	Bookmarked  bool         `json:"bookmarked"`
}

// UserGenerated reports whether the recipe was created through the upload
// pipeline rather than sourced from the catalog.
func (r Recipe) UserGenerated() bool {
	return r.Key != ""
}

// SearchResult is the lightweight listing projection of a Recipe. It never
// carries ingredients or servings.
type SearchResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Image     string `json:"image"`
	Key       string `json:"key,omitempty"`
}

// UserGenerated reports whether the listed recipe was created through the
// upload pipeline.
func (r SearchResult) UserGenerated() bool {
	return r.Key != ""
}

// Clone returns a deep copy of the recipe. Ingredient quantities are copied
// so the clone shares no pointers with the original.
func (r Recipe) Clone() Recipe {
	dup := r
	if r.Ingredients != nil {
		dup.Ingredients = make([]Ingredient, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			dup.Ingredients[i] = ing
			if ing.Quantity != nil {
				q := *ing.Quantity
				dup.Ingredients[i].Quantity = &q
			}
		}
	}
	return dup
}

// Float returns a pointer to v. Convenience for building ingredient lists.
func Float(v float64) *float64 {
	return &v
}
