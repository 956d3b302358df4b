package session

import (
	"context"
	"reflect"
	"testing"

	"github.com/Sulaiman-Gide/purchaseRecommendation/cart"
	"github.com/Sulaiman-Gide/purchaseRecommendation/kv"
)

func newTestStore() *Store {
	return NewStore(kv.NewMemory())
}

func TestCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	lines, err := s.Cart(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("fresh session cart = %v, want empty", lines)
	}

	want := []cart.Line{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}
	if err := s.SaveCart(ctx, "sess1", want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Cart(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Sessions are isolated.
	other, err := s.Cart(ctx, "sess2")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("other session cart = %v, want empty", other)
	}

	if err := s.ClearCart(ctx, "sess1"); err != nil {
		t.Fatal(err)
	}
	got, err = s.Cart(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("cleared cart = %v, want empty", got)
	}
}

func TestCartDropsInvalidLines(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	s := NewStore(backend)

	// Simulate an older blob with a zero-quantity line.
	if err := backend.Set(ctx, "cart:sess1",
		`[{"product_id":"a","quantity":0},{"product_id":"b","quantity":2}]`); err != nil {
		t.Fatal(err)
	}

	got, err := s.Cart(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	want := []cart.Line{{ProductID: "b", Quantity: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIncrementStat(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	for i := 0; i < 3; i++ {
		if _, err := s.IncrementStat(ctx, "sess1", "viewed"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.IncrementStat(ctx, "sess1", "purchased"); err != nil {
		t.Fatal(err)
	}

	stats, err := s.Stats(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Viewed: 3, Purchased: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	if _, err := s.IncrementStat(ctx, "sess1", "bogus"); err == nil {
		t.Fatal("expected error for unknown stat")
	}
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	for _, id := range []string{"p1", "p2", "p1"} {
		if _, err := s.AddFavorite(ctx, "sess1", id); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Favorites(ctx, "sess1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"p1", "p2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("favorites = %v, want %v", got, want)
	}
}
