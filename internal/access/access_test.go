package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed this year", time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC), 26},
		{"birthday today", time.Date(2008, time.August, 28, 0, 0, 0, 0, time.UTC), 18},
		{"birthday tomorrow", time.Date(2008, time.August, 29, 0, 0, 0, 0, time.UTC), 17},
		{"birthday later this year", time.Date(2008, time.December, 25, 0, 0, 0, 0, time.UTC), 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, now))
		})
	}
}

func TestVerifyAge(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	require.NoError(t, VerifyAge(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), now))
	require.ErrorIs(t, VerifyAge(time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), now), ErrUnderage)
}

func TestStaffLogin(t *testing.T) {
	s, err := StaffLogin("carlos@restaurante.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, s.Role)

	_, err = StaffLogin("", "segredo")
	require.ErrorIs(t, err, ErrMissingCredentials)
	_, err = StaffLogin("carlos@restaurante.com", "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestJoinTable(t *testing.T) {
	s, err := JoinTable("Maria", "12")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, s.Role)
	assert.Equal(t, "12", s.TableNumber)

	_, err = JoinTable("", "12")
	require.ErrorIs(t, err, ErrMissingTable)
	_, err = JoinTable("Maria", "")
	require.ErrorIs(t, err, ErrMissingTable)
}
