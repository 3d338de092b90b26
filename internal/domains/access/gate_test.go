package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentello/internal/domains/access"
	"rentello/internal/domains/session/model"
	"rentello/shared/constant"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Yonetici", constant.RoleAdministrator},
		{"YÖNETİCİ", constant.RoleAdministrator},
		{"yönetici", constant.RoleAdministrator},
		{"Admin", constant.RoleAdministrator},
		{"ADMINISTRATOR", constant.RoleAdministrator},
		{"Mudur", constant.RoleManager},
		{"MÜDÜR", constant.RoleManager},
		{"Manager", constant.RoleManager},
		{"Personel", constant.RoleStaff},
		{"ÇALIŞAN", constant.RoleStaff},
		{"staff", constant.RoleStaff},
		{"Müşteri", constant.RoleCustomer},
		{"USER", constant.RoleCustomer},
		{"  customer  ", constant.RoleCustomer},
		{"auditor", "auditor"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Canonical(tt.raw))
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	for _, raw := range []string{"YÖNETİCİ", "Mudur", "staff", "auditor"} {
		once := access.Canonical(raw)
		assert.Equal(t, once, access.Canonical(once))
	}
}

func TestAdmit(t *testing.T) {
	manager := &model.Principal{Username: "ayse", RoleRef: "Mudur"}
	customer := &model.Principal{Username: "mehmet", Role: "Müşteri"}

	t.Run("anonymous is sent to sign in", func(t *testing.T) {
		decision := access.Admit(nil, []string{constant.RoleManager})

		assert.False(t, decision.Allowed)
		assert.Equal(t, constant.RedirectLogin, decision.Redirect)
	})

	t.Run("empty permitted set admits any authenticated principal", func(t *testing.T) {
		decision := access.Admit(customer, nil)

		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Redirect)
	})

	t.Run("legacy spelling matches its canonical role", func(t *testing.T) {
		decision := access.Admit(manager, []string{constant.RoleAdministrator, constant.RoleManager, constant.RoleStaff})

		assert.True(t, decision.Allowed)
	})

	t.Run("role outside the set is sent home", func(t *testing.T) {
		decision := access.Admit(customer, []string{constant.RoleAdministrator, constant.RoleManager})

		assert.False(t, decision.Allowed)
		assert.Equal(t, constant.RedirectHome, decision.Redirect)
	})

	t.Run("repeated evaluation is stable", func(t *testing.T) {
		first := access.Admit(manager, []string{constant.RoleManager})
		second := access.Admit(manager, []string{constant.RoleManager})

		assert.Equal(t, first, second)
	})
}
