// Package backoffice holds the staff-side stores: employees with their
// guest reviews, the reservation book, and the waiter-call log. All of it
// is last-write-wins list state with no lifecycle beyond status fields.
package backoffice

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

type EmployeeStore struct {
	mu        sync.Mutex
	employees []*models.Employee
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{}
}

func (s *EmployeeStore) Add(e models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = cuid.New()
	}
	if e.Status == "" {
		e.Status = models.EmployeeStatusActive
	}
	stored := e
	s.employees = append(s.employees, &stored)
	return stored
}

func (s *EmployeeStore) Update(e models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, emp := range s.employees {
		if emp.ID == e.ID {
			stored := e
			s.employees[i] = &stored
			return nil
		}
	}
	return ErrEmployeeNotFound
}

func (s *EmployeeStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, emp := range s.employees {
		if emp.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrEmployeeNotFound
}

func (s *EmployeeStore) Employee(id string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if emp.ID == id {
			return cloneEmployee(emp), nil
		}
	}
	return models.Employee{}, ErrEmployeeNotFound
}

func (s *EmployeeStore) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		out = append(out, cloneEmployee(emp))
	}
	return out
}

func (s *EmployeeStore) Active() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if emp.Status == models.EmployeeStatusActive {
			out = append(out, cloneEmployee(emp))
		}
	}
	return out
}

// FirstByRole finds the first active employee with the given role, used to
// tell a guest which waiter answers their table.
func (s *EmployeeStore) FirstByRole(role string) (models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if emp.Role == role && emp.Status == models.EmployeeStatusActive {
			return cloneEmployee(emp), true
		}
	}
	return models.Employee{}, false
}

// AddReview appends a guest review and recomputes the employee's mean
// rating.
func (s *EmployeeStore) AddReview(employeeID, author string, rating int, comment string, at time.Time) (models.StaffReview, error) {
	if rating < 1 || rating > 5 {
		return models.StaffReview{}, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if emp.ID != employeeID {
			continue
		}
		review := models.StaffReview{
			ID:      cuid.New(),
			Author:  author,
			Rating:  rating,
			Comment: comment,
			Date:    at,
		}
		emp.Reviews = append(emp.Reviews, review)
		sum := 0
		for _, r := range emp.Reviews {
			sum += r.Rating
		}
		emp.Rating = float64(sum) / float64(len(emp.Reviews))
		return review, nil
	}
	return models.StaffReview{}, ErrEmployeeNotFound
}

func cloneEmployee(e *models.Employee) models.Employee {
	out := *e
	out.Reviews = append([]models.StaffReview(nil), e.Reviews...)
	return out
}
