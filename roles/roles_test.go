package roles_test

import (
	"testing"

	"github.com/priceopt/pot-web/roles"
	"github.com/stretchr/testify/require"
)

func TestActionsFor(t *testing.T) {
	tests := []struct {
		role string
		want roles.Capabilities
	}{
		{"Admin", roles.Capabilities{CanView: true, CanEdit: true, CanDelete: true}},
		{"Supplier", roles.Capabilities{CanView: true, CanEdit: true}},
		{"Support", roles.Capabilities{CanView: true, CanEdit: true}},
		{"Viewer", roles.Capabilities{CanView: true}},
		{"admin", roles.Capabilities{CanView: true}}, // role strings are case-sensitive
		{"", roles.Capabilities{CanView: true}},
	}

	for _, tc := range tests {
		t.Run("role "+tc.role, func(t *testing.T) {
			require.Equal(t, tc.want, roles.ActionsFor(tc.role))
		})
	}
}
