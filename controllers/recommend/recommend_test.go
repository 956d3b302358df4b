package recommendControllers

import (
	"reflect"
	"testing"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
	"github.com/Sulaiman-Gide/purchaseRecommendation/recommend"
)

func TestHistoryOf(t *testing.T) {
	orders := []models.Order{
		{
			UserID: "u1",
			Items: []models.OrderItem{
				{ProductID: 7, Categories: []string{"shoes"}, Quantity: 2},
				{ProductID: 9, Categories: nil, Quantity: 1},
			},
		},
	}

	got := historyOf(orders)
	want := []recommend.Order{
		{
			UserID: "u1",
			Items: []recommend.OrderItem{
				{ProductID: "7", Categories: []string{"shoes"}, Quantity: 2},
				{ProductID: "9", Categories: nil, Quantity: 1},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSnapshotOf(t *testing.T) {
	catalog := []models.Product{
		{
			ID:    3,
			Name:  "Runner",
			Price: 120,
			Categories: []models.Category{
				{Name: "shoes"}, {Name: "sport"},
			},
		},
	}

	got := snapshotOf(catalog)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "3" || got[0].Name != "Runner" {
		t.Fatalf("unexpected product: %+v", got[0])
	}
	if !reflect.DeepEqual(got[0].Categories, []string{"shoes", "sport"}) {
		t.Fatalf("categories = %v", got[0].Categories)
	}
}
