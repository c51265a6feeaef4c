// Package upload validates user-authored recipe submissions.
//
// Ingredient fields are free text in a fixed three-part grammar,
// "quantity,unit,description". The parser is deliberately strict so that
// each failure maps to exactly one error in the taxonomy below.
package upload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tastebook/internal/forkify"
	"tastebook/internal/recipe"
)

// IngredientFieldCount is the number of ingredient inputs on the form,
// named "ingredient-1" through "ingredient-6".
const IngredientFieldCount = 6

// Validation errors. The texts are user-facing and shown verbatim.
var (
	ErrFormat             = errors.New("Wrong ingredient format! Please use: Quantity,Unit,Description")
	ErrQuantityNotNumeric = errors.New("Ingredient quantity must be a number.")
	ErrMissingDescription = errors.New("Ingredient description is required.")
	ErrNoIngredients      = errors.New("Please provide at least one ingredient.")
	ErrCookingTimeNumeric = errors.New("Cooking time must be a number.")
	ErrServingsNumeric    = errors.New("Servings must be a number.")
)

// Form holds the raw string values of the add-recipe form.
type Form struct {
	Title       string
	SourceURL   string
	Image       string
	Publisher   string
	CookingTime string
	Servings    string
	Ingredients [IngredientFieldCount]string
}

// FormFromValues builds a Form from raw field values keyed by field name,
// the shape the rendering layer submits. Unknown keys are ignored.
func FormFromValues(values map[string]string) Form {
	f := Form{
		Title:       values["title"],
		SourceURL:   values["sourceUrl"],
		Image:       values["image"],
		Publisher:   values["publisher"],
		CookingTime: values["cookingTime"],
		Servings:    values["servings"],
	}
	for i := 0; i < IngredientFieldCount; i++ {
		f.Ingredients[i] = values[fmt.Sprintf("ingredient-%d", i+1)]
	}
	return f
}

// ParseIngredient parses a single considered (non-blank) ingredient field.
// The field must split into exactly three comma-separated parts; a non-empty
// quantity must be numeric; the description is mandatory.
func ParseIngredient(value string) (recipe.Ingredient, error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 3 {
		return recipe.Ingredient{}, ErrFormat
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var quantity *float64
	if parts[0] != "" {
		parsed, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return recipe.Ingredient{}, ErrQuantityNotNumeric
		}
		quantity = &parsed
	}

	if parts[2] == "" {
		return recipe.Ingredient{}, ErrMissingDescription
	}

	return recipe.Ingredient{Quantity: quantity, Unit: parts[1], Description: parts[2]}, nil
}

// ParseIngredients parses every considered ingredient field in form order.
// Blank fields are skipped; the first malformed field aborts with its error;
// zero considered fields fails with ErrNoIngredients.
func (f Form) ParseIngredients() ([]recipe.Ingredient, error) {
	var out []recipe.Ingredient
	for _, value := range f.Ingredients {
		if strings.TrimSpace(value) == "" {
			continue
		}
		ing, err := ParseIngredient(value)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	if len(out) == 0 {
		return nil, ErrNoIngredients
	}
	return out, nil
}

// CanSubmit is the live submit gate, recomputed on every edit: submission is
// allowed only when no upload is in flight, at least one ingredient field is
// valid, and no non-blank ingredient field is malformed.
func (f Form) CanSubmit(uploading bool) bool {
	if uploading {
		return false
	}
	_, err := f.ParseIngredients()
	return err == nil
}

// Payload validates the form and constructs the submission body, coercing
// the numeric-looking string fields.
func (f Form) Payload() (forkify.RecipeUpload, error) {
	ingredients, err := f.ParseIngredients()
	if err != nil {
		return forkify.RecipeUpload{}, err
	}

	cookingTime, err := strconv.Atoi(strings.TrimSpace(f.CookingTime))
	if err != nil {
		return forkify.RecipeUpload{}, ErrCookingTimeNumeric
	}
	servings, err := strconv.Atoi(strings.TrimSpace(f.Servings))
	if err != nil {
		return forkify.RecipeUpload{}, ErrServingsNumeric
	}

	return forkify.RecipeUpload{
		Title:       strings.TrimSpace(f.Title),
		SourceURL:   strings.TrimSpace(f.SourceURL),
		ImageURL:    strings.TrimSpace(f.Image),
		Publisher:   strings.TrimSpace(f.Publisher),
		CookingTime: cookingTime,
		Servings:    servings,
		Ingredients: ingredients,
	}, nil
}
