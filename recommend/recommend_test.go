package recommend

import (
	"math/rand"
	"reflect"
	"testing"
)

func orderOf(items ...OrderItem) Order {
	return Order{UserID: "u1", Items: items}
}

func TestCategoryScores(t *testing.T) {
	t.Run("quantities accumulate per tag", func(t *testing.T) {
		orders := []Order{
			orderOf(OrderItem{ProductID: "p1", Categories: []string{"shoes"}, Quantity: 3}),
			orderOf(OrderItem{ProductID: "p2", Categories: []string{"shoes", "sport"}, Quantity: 2}),
		}
		got := CategoryScores(orders)
		want := map[string]int{"shoes": 5, "sport": 2}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("scores = %v, want %v", got, want)
		}
	})

	t.Run("items without categories contribute nothing", func(t *testing.T) {
		orders := []Order{orderOf(OrderItem{ProductID: "p1", Quantity: 4})}
		if got := CategoryScores(orders); len(got) != 0 {
			t.Fatalf("scores = %v, want empty", got)
		}
	})

	t.Run("order permutation yields the same map", func(t *testing.T) {
		orders := []Order{
			orderOf(OrderItem{ProductID: "a", Categories: []string{"x"}, Quantity: 1}),
			orderOf(OrderItem{ProductID: "b", Categories: []string{"y"}, Quantity: 2}),
			orderOf(OrderItem{ProductID: "c", Categories: []string{"x", "y"}, Quantity: 3}),
		}
		want := CategoryScores(orders)

		shuffled := append([]Order{}, orders...)
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			if got := CategoryScores(shuffled); !reflect.DeepEqual(got, want) {
				t.Fatalf("permuted scores = %v, want %v", got, want)
			}
		}
	})
}

func TestRank(t *testing.T) {
	catalog := []Product{
		{ID: "p1", Name: "Runner", Categories: []string{"shoes"}},
		{ID: "p2", Name: "Ball", Categories: []string{"sport"}},
		{ID: "p3", Name: "Cleats", Categories: []string{"shoes", "sport"}},
		{ID: "p4", Name: "Mug", Categories: []string{"kitchen"}},
		{ID: "p5", Name: "Plain", Categories: nil},
	}

	t.Run("empty history yields no recommendations", func(t *testing.T) {
		if got := Rank(nil, catalog); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})

	t.Run("empty catalog yields no recommendations", func(t *testing.T) {
		orders := []Order{orderOf(OrderItem{ProductID: "p1", Categories: []string{"shoes"}, Quantity: 1})}
		if got := Rank(orders, nil); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})

	t.Run("single order, one category, quantity 3", func(t *testing.T) {
		orders := []Order{orderOf(OrderItem{ProductID: "p1", Categories: []string{"shoes"}, Quantity: 3})}
		got := Rank(orders, catalog)

		// p1 and p3 share "shoes" (raw 3 each), everything else scores 0.
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2: %v", len(got), got)
		}
		for _, r := range got {
			if r.MatchScore != 1.0 {
				t.Fatalf("matchScore of %s = %v, want 1.0", r.ID, r.MatchScore)
			}
		}
		// Ties keep catalog order.
		if got[0].ID != "p1" || got[1].ID != "p3" {
			t.Fatalf("tie order = %s,%s, want p1,p3", got[0].ID, got[1].ID)
		}
	})

	t.Run("scores normalize against the best match", func(t *testing.T) {
		orders := []Order{
			orderOf(
				OrderItem{ProductID: "x", Categories: []string{"shoes"}, Quantity: 2},
				OrderItem{ProductID: "y", Categories: []string{"sport"}, Quantity: 1},
			),
		}
		got := Rank(orders, catalog)
		// raw: p1=2 p2=1 p3=3 -> normalized 2/3, 1/3, 1.
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3: %v", len(got), got)
		}
		if got[0].ID != "p3" || got[0].MatchScore != 1.0 {
			t.Fatalf("top = %s (%v), want p3 (1.0)", got[0].ID, got[0].MatchScore)
		}
		if got[1].ID != "p1" || got[1].MatchScore != 2.0/3.0 {
			t.Fatalf("second = %s (%v), want p1 (2/3)", got[1].ID, got[1].MatchScore)
		}
		if got[2].ID != "p2" || got[2].MatchScore != 1.0/3.0 {
			t.Fatalf("third = %s (%v), want p2 (1/3)", got[2].ID, got[2].MatchScore)
		}
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		orders := []Order{
			orderOf(OrderItem{ProductID: "a", Categories: []string{"shoes", "sport"}, Quantity: 2}),
		}
		first := Rank(orders, catalog)
		for i := 0; i < 5; i++ {
			if got := Rank(orders, catalog); !reflect.DeepEqual(got, first) {
				t.Fatalf("call %d differed: %v vs %v", i, got, first)
			}
		}
	})

	t.Run("output truncates to TopN", func(t *testing.T) {
		var bigCatalog []Product
		for i := 0; i < TopN+5; i++ {
			bigCatalog = append(bigCatalog, Product{
				ID:         string(rune('a' + i)),
				Categories: []string{"shoes"},
			})
		}
		orders := []Order{orderOf(OrderItem{ProductID: "x", Categories: []string{"shoes"}, Quantity: 1})}
		if got := Rank(orders, bigCatalog); len(got) != TopN {
			t.Fatalf("len = %d, want %d", len(got), TopN)
		}
	})
}

func TestDiversify(t *testing.T) {
	recs := []Recommendation{
		{Product: Product{ID: "s1", Categories: []string{"shoes"}}, MatchScore: 1.0},
		{Product: Product{ID: "s2", Categories: []string{"shoes"}}, MatchScore: 0.9},
		{Product: Product{ID: "s3", Categories: []string{"shoes"}}, MatchScore: 0.8},
		{Product: Product{ID: "k1", Categories: []string{"kitchen"}}, MatchScore: 0.5},
	}
	got := Diversify(recs)
	if len(got) != len(recs) {
		t.Fatalf("len = %d, want %d", len(got), len(recs))
	}
	// Round-robin: shoes, kitchen, then remaining shoes in original order.
	wantIDs := []string{"s1", "k1", "s2", "s3"}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d = %s, want %s (full: %v)", i, got[i].ID, want, got)
		}
	}
}
