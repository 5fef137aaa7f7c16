package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

type EmployeeFactory struct{}

var shifts = []string{
	"Manhã (6h-14h)",
	"Tarde (14h-22h)",
	"Noite (18h-02h)",
}

var roles = []string{"Garçom", "Garçom", "Cozinheiro", "Caixa", "Gerente"}

func (ef *EmployeeFactory) CreateEmployee() models.Employee {
	return models.Employee{
		ID:     cuid.New(),
		Name:   fake.Person().Name(),
		Role:   roles[rand.Intn(len(roles))],
		Phone:  fake.Phone().Number(),
		Email:  fake.Internet().Email(),
		Shift:  shifts[rand.Intn(len(shifts))],
		Status: models.EmployeeStatusActive,
	}
}

func (ef *EmployeeFactory) CreateWaiter() models.Employee {
	e := ef.CreateEmployee()
	e.Role = "Garçom"
	return e
}
