package recipe

// Rescale returns a copy of the recipe with every non-nil ingredient quantity
// multiplied by newServings/Servings and Servings set to newServings. The
// receiver is never mutated; repeated rescales compound correctly because the
// factor is always computed from the recipe's current servings.
//
// A newServings below 1 returns the recipe unchanged.
func Rescale(r Recipe, newServings int) Recipe {
	if newServings < 1 || r.Servings < 1 {
		return r
	}

	scaled := r.Clone()
	factor := float64(newServings) / float64(r.Servings)
	for i := range scaled.Ingredients {
		if q := scaled.Ingredients[i].Quantity; q != nil {
			*q *= factor
		}
	}
	scaled.Servings = newServings
	return scaled
}
