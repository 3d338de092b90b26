// Package access decides whether a principal may reach a route. Role strings
// come from a backend that has emitted them in several spellings and two
// languages over its lifetime, so everything is canonicalized before any
// comparison.
package access

import (
	"strings"

	"rentello/internal/domains/session/model"
	"rentello/shared/constant"
)

// aliases maps every historical role spelling, already canonicalized to
// lowercase, onto the role names the rest of the gateway uses.
var aliases = map[string]string{
	"yonetici":      constant.RoleAdministrator,
	"admin":         constant.RoleAdministrator,
	"administrator": constant.RoleAdministrator,
	"mudur":         constant.RoleManager,
	"manager":       constant.RoleManager,
	"personel":      constant.RoleStaff,
	"calisan":       constant.RoleStaff,
	"staff":         constant.RoleStaff,
	"musteri":       constant.RoleCustomer,
	"customer":      constant.RoleCustomer,
	"user":          constant.RoleCustomer,
}

// Canonical normalizes a raw role string to one of the constant.Role* values.
// Unknown roles pass through lowercased so a new backend role degrades to
// "not in any permitted set" rather than panicking or being silently admitted.
//
// Turkish spellings need more than ToLower: upper-dotted İ lowercases to
// "i" plus a combining dot above (U+0307), so "YÖNETİCİ" would otherwise never
// match "yönetici". The combining mark is stripped, then accented vowels are
// folded to their ASCII forms to cover both keyboard variants.
func Canonical(role string) string {
	lowered := strings.ToLower(strings.TrimSpace(role))
	lowered = strings.ReplaceAll(lowered, "̇", "")

	folded := strings.NewReplacer(
		"ö", "o",
		"ü", "u",
		"ı", "i",
		"ş", "s",
		"ç", "c",
		"ğ", "g",
	).Replace(lowered)

	if canonical, ok := aliases[folded]; ok {
		return canonical
	}

	return folded
}

// Decision is the outcome of an admission check. When Allowed is false,
// Redirect names where the caller should send the user.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Admit evaluates a principal against a route's permitted role set.
// A nil principal is anonymous and is sent to sign in. An empty permitted set
// means any authenticated principal passes. Otherwise the principal's
// canonical role must be a member of the set. Admit is pure; callers may
// evaluate it as often as they like on the same inputs.
func Admit(principal *model.Principal, permitted []string) Decision {
	if principal == nil {
		return Decision{Redirect: constant.RedirectLogin}
	}

	if len(permitted) == 0 {
		return Decision{Allowed: true}
	}

	role := Canonical(principal.RoleName())
	for _, want := range permitted {
		if role == Canonical(want) {
			return Decision{Allowed: true}
		}
	}

	return Decision{Redirect: constant.RedirectHome}
}
