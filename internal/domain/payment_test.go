package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayment_SourceIDs(t *testing.T) {
	order := Payment{
		Category:       "Pizza",
		CartIDs:        []string{"c1", "c2"},
		ReservationIDs: []string{"r1"},
	}
	assert.False(t, order.IsReservation())
	assert.Equal(t, []string{"c1", "c2"}, order.SourceIDs())

	reservation := Payment{
		Category:       CategoryReservation,
		CartIDs:        []string{"c1"},
		ReservationIDs: []string{"r1"},
	}
	assert.True(t, reservation.IsReservation())
	assert.Equal(t, []string{"r1"}, reservation.SourceIDs())

	// no category at all is an order payment
	uncategorized := Payment{CartIDs: []string{"c1"}}
	assert.False(t, uncategorized.IsReservation())
	assert.Equal(t, []string{"c1"}, uncategorized.SourceIDs())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: "staff"}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())

	// absent users are simply not admins
	var missing *User
	assert.False(t, missing.IsAdmin())
}
