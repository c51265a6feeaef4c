package upload

import (
	"errors"
	"testing"
)

func TestParseIngredient_AcceptanceTable(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      error
		wantQuantity *float64
		wantUnit     string
		wantDesc     string
	}{
		{name: "full field", input: "2,kg,Flour", wantQuantity: floatPtr(2), wantUnit: "kg", wantDesc: "Flour"},
		{name: "no quantity no unit", input: ",,Salt", wantQuantity: nil, wantUnit: "", wantDesc: "Salt"},
		{name: "whitespace trimmed", input: " 2 , kg , Flour ", wantQuantity: floatPtr(2), wantUnit: "kg", wantDesc: "Flour"},
		{name: "fractional quantity", input: "0.5,tsp,yeast", wantQuantity: floatPtr(0.5), wantUnit: "tsp", wantDesc: "yeast"},
		{name: "two parts", input: "2,kg", wantErr: ErrFormat},
		{name: "four parts", input: "2,kg,Flour,extra", wantErr: ErrFormat},
		{name: "non-numeric quantity", input: "abc,kg,Flour", wantErr: ErrQuantityNotNumeric},
		{name: "missing description", input: "2,kg,", wantErr: ErrMissingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIngredient(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got.Quantity == nil) != (tt.wantQuantity == nil) {
				t.Fatalf("quantity nilness = %v, want %v", got.Quantity, tt.wantQuantity)
			}
			if got.Quantity != nil && *got.Quantity != *tt.wantQuantity {
				t.Fatalf("quantity = %v, want %v", *got.Quantity, *tt.wantQuantity)
			}
			if got.Unit != tt.wantUnit || got.Description != tt.wantDesc {
				t.Fatalf("got unit=%q desc=%q, want unit=%q desc=%q", got.Unit, got.Description, tt.wantUnit, tt.wantDesc)
			}
		})
	}
}

func TestParseIngredients_BlankFieldsAreIgnored(t *testing.T) {
	var f Form
	f.Ingredients[0] = "2,kg,Flour"
	f.Ingredients[2] = "   " // blank: skipped, not an error
	f.Ingredients[4] = ",,Salt"

	got, err := f.ParseIngredients()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Description != "Flour" || got[1].Description != "Salt" {
		t.Fatalf("ingredients = %#v, want [Flour Salt] in form order", got)
	}
}

func TestParseIngredients_ZeroConsideredFieldsFails(t *testing.T) {
	var f Form
	f.Ingredients[1] = "  "

	_, err := f.ParseIngredients()
	if !errors.Is(err, ErrNoIngredients) {
		t.Fatalf("error = %v, want ErrNoIngredients", err)
	}
}

func TestCanSubmit_Gate(t *testing.T) {
	valid := Form{}
	valid.Ingredients[0] = "2,kg,Flour"

	malformed := valid
	malformed.Ingredients[1] = "2,kg" // filled but malformed

	empty := Form{}

	if !valid.CanSubmit(false) {
		t.Fatalf("valid form gated closed")
	}
	if valid.CanSubmit(true) {
		t.Fatalf("gate open while upload in flight")
	}
	if malformed.CanSubmit(false) {
		t.Fatalf("gate open with a malformed non-blank field")
	}
	if empty.CanSubmit(false) {
		t.Fatalf("gate open with zero valid ingredients")
	}
}

func TestFormFromValues_MapsFieldNames(t *testing.T) {
	f := FormFromValues(map[string]string{
		"title":        "Toast",
		"sourceUrl":    "https://example.com",
		"image":        "https://example.com/t.jpg",
		"publisher":    "me",
		"cookingTime":  "5",
		"servings":     "2",
		"ingredient-1": "1,slice,Bread",
		"ingredient-6": ",,Butter",
		"unrelated":    "ignored",
	})

	if f.Title != "Toast" || f.Servings != "2" {
		t.Fatalf("form = %#v, want named fields mapped", f)
	}
	if f.Ingredients[0] != "1,slice,Bread" || f.Ingredients[5] != ",,Butter" {
		t.Fatalf("ingredient fields = %#v, want positional mapping", f.Ingredients)
	}
}

func TestPayload_CoercesNumbersAndBuildsBody(t *testing.T) {
	f := FormFromValues(map[string]string{
		"title":        " Toast ",
		"sourceUrl":    "https://example.com",
		"image":        "img",
		"publisher":    "me",
		"cookingTime":  "5",
		"servings":     "2",
		"ingredient-1": "1,slice,Bread",
	})

	payload, err := f.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if payload.Title != "Toast" || payload.CookingTime != 5 || payload.Servings != 2 {
		t.Fatalf("payload = %#v, want trimmed title and coerced numbers", payload)
	}
	if len(payload.Ingredients) != 1 || *payload.Ingredients[0].Quantity != 1 {
		t.Fatalf("payload ingredients = %#v", payload.Ingredients)
	}
}

func TestPayload_RejectsNonNumericFields(t *testing.T) {
	base := map[string]string{
		"title":        "Toast",
		"cookingTime":  "5",
		"servings":     "2",
		"ingredient-1": "1,slice,Bread",
	}

	bad := func(key, value string) Form {
		values := make(map[string]string, len(base))
		for k, v := range base {
			values[k] = v
		}
		values[key] = value
		return FormFromValues(values)
	}

	if _, err := bad("cookingTime", "soon").Payload(); !errors.Is(err, ErrCookingTimeNumeric) {
		t.Fatalf("error = %v, want ErrCookingTimeNumeric", err)
	}
	if _, err := bad("servings", "many").Payload(); !errors.Is(err, ErrServingsNumeric) {
		t.Fatalf("error = %v, want ErrServingsNumeric", err)
	}
}

func floatPtr(v float64) *float64 { return &v }
