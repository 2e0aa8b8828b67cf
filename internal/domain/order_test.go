package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "preparing", OrderStatusSubmitted.Label())
	assert.Equal(t, "in transit", OrderStatusShipping.Label())
	assert.Equal(t, "done", OrderStatusCompleted.Label())
	assert.Equal(t, "cancelled", OrderStatusCancelled.Label())
}

func TestOrderStatus_LabelUnknownFallsBack(t *testing.T) {
	assert.Equal(t, "LOST", OrderStatus("LOST").Label())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusSubmitted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("LOST").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestIdentityOf_CopiesRoles(t *testing.T) {
	u := &User{ID: "u1", Fullname: "Nguyen Van A", Email: "a@example.com", Roles: []string{RoleCustomer}}
	id := IdentityOf(u)

	assert.Equal(t, "u1", id.ID)
	assert.Equal(t, []string{RoleCustomer}, id.Roles)

	id.Roles[0] = RoleAdmin
	assert.Equal(t, RoleCustomer, u.Roles[0], "identity must not alias the stored user's roles")
}
