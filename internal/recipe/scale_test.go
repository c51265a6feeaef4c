package recipe

import (
	"math"
	"testing"
)

func sample() Recipe {
	return Recipe{
		ID:       "5ed6604591c37cdc054bc886",
		Title:    "Pizza",
		Servings: 4,
		Ingredients: []Ingredient{
			{Quantity: Float(1000), Unit: "g", Description: "flour"},
			{Quantity: Float(0.5), Unit: "tsp", Description: "yeast"},
			{Quantity: nil, Unit: "", Description: "salt to taste"},
		},
	}
}

func TestRescale_DoublesQuantities(t *testing.T) {
	r := sample()
	scaled := Rescale(r, 8)

	if scaled.Servings != 8 {
		t.Fatalf("Servings = %d, want 8", scaled.Servings)
	}
	if got := *scaled.Ingredients[0].Quantity; got != 2000 {
		t.Fatalf("flour = %v, want 2000", got)
	}
	if got := *scaled.Ingredients[1].Quantity; got != 1 {
		t.Fatalf("yeast = %v, want 1", got)
	}
	if scaled.Ingredients[2].Quantity != nil {
		t.Fatalf("nil quantity became %v, want nil", *scaled.Ingredients[2].Quantity)
	}
}

func TestRescale_DoesNotMutateOriginal(t *testing.T) {
	r := sample()
	_ = Rescale(r, 8)

	if r.Servings != 4 {
		t.Fatalf("original servings changed to %d", r.Servings)
	}
	if got := *r.Ingredients[0].Quantity; got != 1000 {
		t.Fatalf("original quantity changed to %v", got)
	}
}

func TestRescale_RejectsServingsBelowOne(t *testing.T) {
	r := sample()
	for _, n := range []int{0, -1, -100} {
		scaled := Rescale(r, n)
		if scaled.Servings != 4 || *scaled.Ingredients[0].Quantity != 1000 {
			t.Fatalf("Rescale(%d) changed state: %+v", n, scaled)
		}
	}
}

func TestRescale_StepwiseMatchesDirect(t *testing.T) {
	r := sample()

	stepped := Rescale(Rescale(r, 5), 6)
	direct := Rescale(r, 6)

	for i := range direct.Ingredients {
		dq, sq := direct.Ingredients[i].Quantity, stepped.Ingredients[i].Quantity
		if (dq == nil) != (sq == nil) {
			t.Fatalf("ingredient %d: nilness diverged", i)
		}
		if dq == nil {
			continue
		}
		if math.Abs(*dq-*sq) > 1e-9 {
			t.Fatalf("ingredient %d: stepped %v != direct %v", i, *sq, *dq)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	r := sample()
	dup := r.Clone()
	*dup.Ingredients[0].Quantity = 42

	if *r.Ingredients[0].Quantity != 1000 {
		t.Fatalf("clone shares quantity pointer with original")
	}
}
