package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("hunter2secret"))
	assert.NotEqual(t, "hunter2secret", u.PasswordHash)

	assert.True(t, u.CheckPassword("hunter2secret"))
	assert.False(t, u.CheckPassword("hunter2"))
	assert.False(t, u.CheckPassword(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleInstructor))
	assert.True(t, ValidRole(RoleStudent))
	assert.False(t, ValidRole("tutor"))
	assert.False(t, ValidRole(""))
}
