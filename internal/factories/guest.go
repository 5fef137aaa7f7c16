package factories

import (
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

var fake = faker.New()

type GuestFactory struct{}

func (gf *GuestFactory) CreateGuest(table string) models.Guest {
	return models.Guest{
		ID:          cuid.New(),
		Name:        fake.Person().Name(),
		TableNumber: table,
		PartySize:   fake.IntBetween(1, 6),
	}
}
