// Package access implements the demo entry gates: the 18+ age check and the
// staff/customer sign-in. This is presentation-level gating, not real
// authentication.
package access

import (
	"errors"
	"time"
)

const MinimumAge = 18

var (
	ErrUnderage           = errors.New("guest must be 18 or older")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingTable       = errors.New("name and table number are required")
)

const (
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// Session is who is using the app and, for customers, from which table.
type Session struct {
	Role        string
	Name        string
	TableNumber string
}

// Age computes full years between a birth date and now, accounting for
// whether the birthday has passed this year.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// VerifyAge gates entry on the minimum age.
func VerifyAge(birth, now time.Time) error {
	if Age(birth, now) < MinimumAge {
		return ErrUnderage
	}
	return nil
}

// StaffLogin accepts any non-empty credential pair, as the reference app
// does: the form exists, the check is cosmetic.
func StaffLogin(email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, ErrMissingCredentials
	}
	return Session{Role: RoleStaff, Name: email}, nil
}

// JoinTable signs a guest in at a table.
func JoinTable(name, table string) (Session, error) {
	if name == "" || table == "" {
		return Session{}, ErrMissingTable
	}
	return Session{Role: RoleCustomer, Name: name, TableNumber: table}, nil
}
