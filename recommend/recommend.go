// Package recommend scores catalog products against a user's purchase
// history by category overlap. It is a pure function of (order history,
// catalog snapshot): results are recomputed in full on every call and
// nothing is cached or persisted.
package recommend

import "sort"

// TopN caps the number of recommendations returned by Rank.
const TopN = 10

// Product is the catalog projection the recommender scores.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Image      string   `json:"image"`
	Categories []string `json:"categories"`
}

// OrderItem is one purchased line from the order history. Categories may be
// empty for legacy orders; such items simply contribute nothing.
type OrderItem struct {
	ProductID  string
	Categories []string
	Quantity   int
}

// Order is one historical order for the user being recommended to.
type Order struct {
	UserID string
	Items  []OrderItem
}

// Recommendation is a catalog product plus its normalized affinity score,
// always in (0, 1] for products that appear in the output.
type Recommendation struct {
	Product
	MatchScore float64 `json:"match_score"`
}

// CategoryScores accumulates purchase quantity per category tag across all
// orders. Adding up quantities is commutative, so the order of the input
// sequence never matters.
func CategoryScores(orders []Order) map[string]int {
	scores := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			for _, tag := range item.Categories {
				if tag == "" {
					continue
				}
				scores[tag] += qty
			}
		}
	}
	return scores
}

// Rank scores every catalog product by summed category affinity, normalizes
// by the best raw score, and returns the top matches in descending score
// order. Ties keep catalog order. An empty history, empty catalog, or a
// history with no categorized items all yield an empty slice.
func Rank(orders []Order, catalog []Product) []Recommendation {
	scores := CategoryScores(orders)
	if len(scores) == 0 {
		return nil
	}

	type scored struct {
		product Product
		raw     int
	}
	var matched []scored
	maxRaw := 0
	for _, p := range catalog {
		raw := 0
		for _, tag := range p.Categories {
			raw += scores[tag]
		}
		if raw == 0 {
			continue // no category overlap, never recommended
		}
		matched = append(matched, scored{product: p, raw: raw})
		if raw > maxRaw {
			maxRaw = raw
		}
	}
	if len(matched) == 0 {
		return nil
	}

	recs := make([]Recommendation, len(matched))
	for i, s := range matched {
		recs[i] = Recommendation{
			Product:    s.product,
			MatchScore: float64(s.raw) / float64(maxRaw),
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > TopN {
		recs = recs[:TopN]
	}
	return recs
}

// Diversify reorders recommendations round-robin across each product's
// primary category, so one dominant category does not fill the whole list.
// Relative order within a category is preserved.
func Diversify(recs []Recommendation) []Recommendation {
	if len(recs) < 2 {
		return recs
	}

	groups := make(map[string][]Recommendation)
	var order []string
	for _, r := range recs {
		key := ""
		if len(r.Categories) > 0 {
			key = r.Categories[0]
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	out := make([]Recommendation, 0, len(recs))
	for len(out) < len(recs) {
		for _, key := range order {
			if g := groups[key]; len(g) > 0 {
				out = append(out, g[0])
				groups[key] = g[1:]
			}
		}
	}
	return out
}
