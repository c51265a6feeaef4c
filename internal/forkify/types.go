package forkify

import "tastebook/internal/recipe"

// Wire types mirror the catalog's JSON schema. Field names stay snake_case
// on the wire and are renamed during normalization.

type wireRecipe struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Publisher   string              `json:"publisher"`
	SourceURL   string              `json:"source_url"`
	ImageURL    string              `json:"image_url"`
	Servings    int                 `json:"servings"`
	CookingTime int                 `json:"cooking_time"`
	Ingredients []recipe.Ingredient `json:"ingredients"`
	Key         string              `json:"key,omitempty"`
}

type wireListItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"image_url"`
	Key       string `json:"key,omitempty"`
}

// recipeEnvelope wraps single-recipe responses: {status, data:{recipe}}.
type recipeEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Recipe wireRecipe `json:"recipe"`
	} `json:"data"`
}

// searchEnvelope wraps search responses: {status, data:{recipes:[...]}}.
type searchEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Recipes []wireListItem `json:"recipes"`
	} `json:"data"`
}

// errorEnvelope is the best-effort shape of an error response body.
type errorEnvelope struct {
	Message string `json:"message"`
}

// RecipeUpload is the POST body for submitting a user-authored recipe.
type RecipeUpload struct {
	Title       string              `json:"title"`
	SourceURL   string              `json:"source_url"`
	ImageURL    string              `json:"image_url"`
	Publisher   string              `json:"publisher"`
	CookingTime int                 `json:"cooking_time"`
	Servings    int                 `json:"servings"`
	Ingredients []recipe.Ingredient `json:"ingredients"`
}

// toRecipe renames wire fields to domain fields. Ingredients are copied
// verbatim; Key stays empty when the source omitted it.
func toRecipe(w wireRecipe) recipe.Recipe {
	return recipe.Recipe{
		ID:          w.ID,
		Title:       w.Title,
		Publisher:   w.Publisher,
		SourceURL:   w.SourceURL,
		Image:       w.ImageURL,
		Servings:    w.Servings,
		CookingTime: w.CookingTime,
		Ingredients: w.Ingredients,
		Key:         w.Key,
	}
}

// toSearchResult projects the listing fields only.
func toSearchResult(w wireListItem) recipe.SearchResult {
	return recipe.SearchResult{
		ID:        w.ID,
		Title:     w.Title,
		Publisher: w.Publisher,
		Image:     w.ImageURL,
		Key:       w.Key,
	}
}
