package user_test

import (
	"fmt"
	"testing"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		code     string
		expected user.Role
	}{
		{"DENTISTA", user.Dentist},
		{"gestor", user.Manager},
		{" Cadista ", user.CadTechnician},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			role, err := user.ParseRole(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}

	t.Run("rejects unknown codes", func(t *testing.T) {
		for _, code := range []string{"", "ADMIN", "UNKNOWN"} {
			_, err := user.ParseRole(code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	for _, role := range []user.Role{user.Dentist, user.Manager, user.CadTechnician} {
		require.NoError(t, role.Validate())
	}

	for _, role := range []user.Role{user.UnknownRole, user.Role(-1), user.Role(9)} {
		t.Run(fmt.Sprintf("rejects %d", int(role)), func(t *testing.T) {
			err := role.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		})
	}
}

func TestRole_StringAndLabel(t *testing.T) {
	assert.Equal(t, "DENTISTA", user.Dentist.String())
	assert.Equal(t, "GESTOR", user.Manager.String())
	assert.Equal(t, "CADISTA", user.CadTechnician.String())
	assert.Equal(t, "UNKNOWN", user.Role(42).String())

	assert.Equal(t, "Cadista", user.CadTechnician.Label())
	assert.Empty(t, user.UnknownRole.Label())
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, user.Dentist.IsStaff())
	assert.True(t, user.Manager.IsStaff())
	assert.True(t, user.CadTechnician.IsStaff())
	assert.False(t, user.UnknownRole.IsStaff())
}
