package factories

import (
	"math/rand"

	"github.com/restaurantx/tableside/internal/models"
)

type SpecialFactory struct{}

// CreateSpecial generates a daily special on top of the house menu.
func (sf *SpecialFactory) CreateSpecial() models.MenuItem {
	category := specialCategories[rand.Intn(len(specialCategories))]
	names := specialsByCategory[category]
	return models.MenuItem{
		Name:        names[rand.Intn(len(names))],
		Description: fake.Lorem().Sentence(8),
		Price:       models.NewMoneyFromFloat(fake.Float64(2, 15, 95)),
		Category:    category,
		Available:   true,
	}
}

var specialCategories = []string{
	"Pratos Principais",
	"Massas",
	"Saladas",
	"Sobremesas",
	"Bebidas",
}

var specialsByCategory = map[string][]string{
	"Pratos Principais": {"Moqueca Baiana", "Bobó de Camarão", "Galinhada", "Costela no Bafo"},
	"Massas":            {"Nhoque ao Sugo", "Ravioli de Queijo", "Fettuccine Alfredo", "Lasanha à Bolonhesa"},
	"Saladas":           {"Salada Tropical", "Salada Caprese", "Salada de Quinoa", "Salada Grega"},
	"Sobremesas":        {"Pudim de Leite", "Brigadeiro Gourmet", "Quindim", "Mousse de Maracujá"},
	"Bebidas":           {"Caipirinha", "Suco de Laranja", "Água de Coco", "Mate Gelado"},
}
