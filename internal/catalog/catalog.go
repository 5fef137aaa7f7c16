// Package catalog is the in-memory menu. Orders snapshot name and price at
// checkout, so edits here never retro-price a placed order.
package catalog

import (
	"errors"
	"sync"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

var ErrItemNotFound = errors.New("menu item not found")

// Additions guests can pick per line; each one costs the configured flat
// surcharge regardless of which it is.
var Additions = []string{
	"Queijo extra",
	"Bacon",
	"Cebola caramelizada",
	"Molho especial",
	"Pimenta",
	"Azeitonas",
	"Cogumelos",
}

// Removals are free.
var Removals = []string{
	"Cebola",
	"Tomate",
	"Alho",
	"Pimenta",
	"Sal",
	"Temperos",
	"Molho",
}

type Store struct {
	mu    sync.Mutex
	items []*models.MenuItem
}

func NewStore() *Store {
	return &Store{}
}

// Seeded returns a store preloaded with the house menu.
func Seeded() *Store {
	s := NewStore()
	for _, it := range houseMenu() {
		s.Add(it)
	}
	return s
}

// Add inserts a dish, assigning an id when the caller left it empty, and
// returns the stored item.
func (s *Store) Add(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = cuid.New()
	}
	stored := item
	s.items = append(s.items, &stored)
	return stored
}

func (s *Store) Update(item models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == item.ID {
			stored := item
			s.items[i] = &stored
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *Store) SetAvailability(id string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			it.Available = available
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *Store) Item(id string) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return *it, nil
		}
	}
	return models.MenuItem{}, ErrItemNotFound
}

// Items returns every dish in display order.
func (s *Store) Items() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out
}

// Available returns only dishes a guest can currently order.
func (s *Store) Available() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Available {
			out = append(out, *it)
		}
	}
	return out
}

// Categories lists category labels in first-seen order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, it := range s.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// AddExtraDishes loads config-provided dishes on top of the house menu.
func (s *Store) AddExtraDishes(dishes []models.ExtraDish) {
	for _, d := range dishes {
		s.Add(models.MenuItem{
			Name:      d.Name,
			Category:  d.Category,
			Price:     models.NewMoneyFromFloat(d.Price),
			Available: true,
		})
	}
}

func houseMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Risoto de Camarão",
			Description: "Risoto cremoso com camarões frescos e açafrão",
			Price:       models.NewMoneyFromFloat(68.90),
			Category:    "Pratos Principais",
			Available:   true,
		},
		{
			Name:        "Pasta Carbonara",
			Description: "Massa italiana com molho carbonara tradicional",
			Price:       models.NewMoneyFromFloat(52.90),
			Category:    "Massas",
			Available:   true,
		},
		{
			Name:        "Picanha Premium",
			Description: "Picanha grelhada ao ponto com acompanhamentos",
			Price:       models.NewMoneyFromFloat(89.90),
			Category:    "Pratos Principais",
			Available:   true,
		},
		{
			Name:        "Salada Caesar",
			Description: "Alface romana, croutons, parmesão e molho caesar",
			Price:       models.NewMoneyFromFloat(32.90),
			Category:    "Saladas",
			Available:   true,
		},
		{
			Name:        "Petit Gâteau",
			Description: "Bolo de chocolate quente com sorvete de baunilha",
			Price:       models.NewMoneyFromFloat(28.90),
			Category:    "Sobremesas",
			Available:   true,
		},
		{
			Name:        "Limonada Suíça",
			Description: "Limonada fresca com leite condensado e gelo",
			Price:       models.NewMoneyFromFloat(12.90),
			Category:    "Bebidas",
			Available:   true,
		},
	}
}
