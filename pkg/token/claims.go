package token

import (
	"strconv"
	"strings"
)

// Identity-provider claims. Each returns the zero value when the claim is
// absent or has an unexpected type.

func (t *Token) Email() string             { return t.str("email") }
func (t *Token) Name() string              { return t.str("name") }
func (t *Token) GivenName() string         { return t.str("given_name") }
func (t *Token) FamilyName() string        { return t.str("family_name") }
func (t *Token) PreferredUsername() string { return t.str("preferred_username") }
func (t *Token) Nonce() string             { return t.str("nonce") }
func (t *Token) AuthorizedParty() string   { return t.str("azp") }
func (t *Token) SessionState() string      { return t.str("session_state") }

// TenantID returns the Azure AD "tid" claim.
func (t *Token) TenantID() string { return t.str("tid") }

// ObjectID returns the Azure AD "oid" claim.
func (t *Token) ObjectID() string { return t.str("oid") }

// UPN returns the Azure AD user principal name.
func (t *Token) UPN() string { return t.str("upn") }

// EmailVerified accepts both boolean and string encodings.
func (t *Token) EmailVerified() bool {
	switch v := t.claims["email_verified"].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Scopes returns the space-separated "scope" claim, falling back to "scp".
func (t *Token) Scopes() []string {
	if v, ok := t.claims["scope"]; ok {
		return strings.Fields(strings.Join(stringSlice(v), " "))
	}
	return strings.Fields(strings.Join(stringSlice(t.claims["scp"]), " "))
}

// Groups returns the "groups" claim.
func (t *Token) Groups() []string { return stringSlice(t.claims["groups"]) }

// Roles returns the Azure AD "roles" claim.
func (t *Token) Roles() []string { return stringSlice(t.claims["roles"]) }

// RealmRoles returns Keycloak realm_access.roles.
func (t *Token) RealmRoles() []string {
	access, _ := t.claims["realm_access"].(map[string]any)
	return stringSlice(access["roles"])
}

// ResourceRoles returns Keycloak resource_access.<client>.roles.
func (t *Token) ResourceRoles(client string) []string {
	access, _ := t.claims["resource_access"].(map[string]any)
	entry, _ := access[client].(map[string]any)
	return stringSlice(entry["roles"])
}

func stringSlice(v any) []string {
	switch v := v.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
