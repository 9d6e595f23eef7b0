package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleLabTechnician.Valid())
	assert.False(t, Role("Janitor").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleIDPrefix(t *testing.T) {
	assert.Equal(t, "DOCT", RoleDoctor.IDPrefix())
	assert.Equal(t, "PHARM", RolePharmacist.IDPrefix())
	assert.Equal(t, "LAB", RoleLabTechnician.IDPrefix())
	assert.Equal(t, "RECEP", RoleReceptionist.IDPrefix())
}
