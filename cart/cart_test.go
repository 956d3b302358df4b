package cart

import (
	"errors"
	"reflect"
	"testing"
)

func lookupFor(products ...Product) Lookup {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestAdd(t *testing.T) {
	t.Run("new product -> line with quantity 1", func(t *testing.T) {
		lines := Add(nil, "a")
		want := []Line{{ProductID: "a", Quantity: 1}}
		if !reflect.DeepEqual(lines, want) {
			t.Fatalf("got %v, want %v", lines, want)
		}
	})

	t.Run("existing product -> quantity incremented", func(t *testing.T) {
		lines := Add(Add(nil, "a"), "a")
		if got := Quantity(lines, "a"); got != 2 {
			t.Fatalf("quantity = %d, want 2", got)
		}
		if len(lines) != 1 {
			t.Fatalf("expected a single line, got %d", len(lines))
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		orig := []Line{{ProductID: "a", Quantity: 1}}
		_ = Add(orig, "a")
		if orig[0].Quantity != 1 {
			t.Fatal("Add mutated its input")
		}
	})
}

func TestRemoveAfterAddRestoresCart(t *testing.T) {
	base := []Line{{ProductID: "x", Quantity: 3}, {ProductID: "y", Quantity: 1}}
	got := Remove(Add(base, "p"), "p")
	if !reflect.DeepEqual(got, base) {
		t.Fatalf("remove(add(C,p),p) = %v, want %v", got, base)
	}

	// Removing an absent product is idempotent.
	if got := Remove(base, "p"); !reflect.DeepEqual(got, base) {
		t.Fatalf("removing absent line changed the cart: %v", got)
	}
}

func TestSetQuantity(t *testing.T) {
	base := []Line{{ProductID: "a", Quantity: 2}}

	t.Run("replaces quantity", func(t *testing.T) {
		lines, err := SetQuantity(base, "a", 5)
		if err != nil {
			t.Fatal(err)
		}
		if got := Quantity(lines, "a"); got != 5 {
			t.Fatalf("quantity = %d, want 5", got)
		}
	})

	t.Run("zero is refused", func(t *testing.T) {
		lines, err := SetQuantity(base, "a", 0)
		if !errors.Is(err, ErrQuantityTooLow) {
			t.Fatalf("err = %v, want ErrQuantityTooLow", err)
		}
		if !reflect.DeepEqual(lines, base) {
			t.Fatalf("cart changed on refused set: %v", lines)
		}
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		lines, err := SetQuantity(base, "zzz", 4)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(lines, base) {
			t.Fatalf("cart changed for unknown product: %v", lines)
		}
	})
}

func TestCheckStock(t *testing.T) {
	p := Product{ID: "a", Stock: 1}

	// At stock already: adding one more must be rejected.
	if err := CheckStock(p, 2); !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("err = %v, want ErrStockExceeded", err)
	}
	if err := CheckStock(p, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTotal(t *testing.T) {
	lookup := lookupFor(
		Product{ID: "a", Price: 100},
		Product{ID: "b", Price: 250},
	)

	t.Run("sums price times quantity", func(t *testing.T) {
		lines := []Line{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}
		total, missing := Total(lines, lookup)
		if total != 450 {
			t.Fatalf("total = %v, want 450", total)
		}
		if len(missing) != 0 {
			t.Fatalf("unexpected missing products: %v", missing)
		}
	})

	t.Run("missing product contributes zero and is reported", func(t *testing.T) {
		lines := []Line{{ProductID: "a", Quantity: 1}, {ProductID: "gone", Quantity: 3}}
		total, missing := Total(lines, lookup)
		if total != 100 {
			t.Fatalf("total = %v, want 100", total)
		}
		if !reflect.DeepEqual(missing, []string{"gone"}) {
			t.Fatalf("missing = %v, want [gone]", missing)
		}
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		total, missing := Total(nil, lookup)
		if total != 0 || missing != nil {
			t.Fatalf("got %v / %v, want 0 / nil", total, missing)
		}
	})

	t.Run("linear over disjoint carts", func(t *testing.T) {
		left := []Line{{ProductID: "a", Quantity: 2}}
		right := []Line{{ProductID: "b", Quantity: 4}}
		both := append(append([]Line{}, left...), right...)

		lt, _ := Total(left, lookup)
		rt, _ := Total(right, lookup)
		bt, _ := Total(both, lookup)
		if bt != lt+rt {
			t.Fatalf("total(left+right) = %v, want %v", bt, lt+rt)
		}
	})
}

func TestCount(t *testing.T) {
	lines := []Line{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}
	if got := Count(lines); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if got := Count(Clear()); got != 0 {
		t.Fatalf("count of cleared cart = %d, want 0", got)
	}
}
