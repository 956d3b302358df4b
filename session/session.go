// Package session persists per-session storefront state in the key-value
// store: the guest cart, liked products, and usage-statistics counters.
// Records are stored as JSON blobs under fixed per-session keys, matching
// the shapes in models and the cart package.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sulaiman-Gide/purchaseRecommendation/cart"
	"github.com/Sulaiman-Gide/purchaseRecommendation/kv"
)

// Stats counts a shopper's activity for the settings screen.
type Stats struct {
	Viewed    int `json:"viewed"`
	Liked     int `json:"liked"`
	Purchased int `json:"purchased"`
}

type Store struct {
	kv kv.Store
}

func NewStore(backend kv.Store) *Store {
	return &Store{kv: backend}
}

func cartKey(sessionID string) string      { return "cart:" + sessionID }
func statsKey(sessionID string) string     { return "stats:" + sessionID }
func favoritesKey(sessionID string) string { return "favorites:" + sessionID }

// Cart loads the session's cart lines. A missing key is an empty cart.
func (s *Store) Cart(ctx context.Context, sessionID string) ([]cart.Line, error) {
	var lines []cart.Line
	if err := s.load(ctx, cartKey(sessionID), &lines); err != nil {
		return nil, err
	}
	// Drop malformed lines rather than failing the whole cart: older
	// blobs occasionally carried zero quantities.
	valid := lines[:0]
	for _, l := range lines {
		if l.ProductID != "" && l.Quantity >= 1 {
			valid = append(valid, l)
		}
	}
	return valid, nil
}

func (s *Store) SaveCart(ctx context.Context, sessionID string, lines []cart.Line) error {
	return s.save(ctx, cartKey(sessionID), lines)
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	return s.kv.Delete(ctx, cartKey(sessionID))
}

func (s *Store) Stats(ctx context.Context, sessionID string) (Stats, error) {
	var stats Stats
	err := s.load(ctx, statsKey(sessionID), &stats)
	return stats, err
}

// IncrementStat bumps one activity counter. Unknown counter names error so
// typos surface instead of silently creating counters.
func (s *Store) IncrementStat(ctx context.Context, sessionID, stat string) (Stats, error) {
	stats, err := s.Stats(ctx, sessionID)
	if err != nil {
		return Stats{}, err
	}
	switch stat {
	case "viewed":
		stats.Viewed++
	case "liked":
		stats.Liked++
	case "purchased":
		stats.Purchased++
	default:
		return Stats{}, fmt.Errorf("unknown stat %q", stat)
	}
	if err := s.save(ctx, statsKey(sessionID), stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// Favorites returns the session's liked product IDs in like order.
func (s *Store) Favorites(ctx context.Context, sessionID string) ([]string, error) {
	var ids []string
	if err := s.load(ctx, favoritesKey(sessionID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// AddFavorite appends a product ID once; re-liking is a no-op.
func (s *Store) AddFavorite(ctx context.Context, sessionID, productID string) ([]string, error) {
	ids, err := s.Favorites(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == productID {
			return ids, nil
		}
	}
	ids = append(ids, productID)
	if err := s.save(ctx, favoritesKey(sessionID), ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) load(ctx context.Context, key string, out interface{}) error {
	blob, err := s.kv.Get(ctx, key)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(blob), out)
}

func (s *Store) save(ctx context.Context, key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(blob))
}
