package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("SUBMITTED").Valid())
}

func TestRoleIsApplicant(t *testing.T) {
	assert.True(t, RoleStudent.IsApplicant())
	assert.True(t, RoleEmployee.IsApplicant())
	assert.False(t, RoleStaff.IsApplicant())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, RoleType("admin").Valid())
}
