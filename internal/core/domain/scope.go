package domain

// CallerRole is the role carried by an authenticated caller.
type CallerRole string

const (
	RoleAdmin    CallerRole = "admin"
	RoleViewer   CallerRole = "viewer"
	RoleMerchant CallerRole = "merchant"
	RoleCustomer CallerRole = "customer"
)

// ScopeKind says which part of the ledger a caller may see.
type ScopeKind string

const (
	ScopeAll  ScopeKind = "all"  // every account
	ScopeOwn  ScopeKind = "own"  // only the caller's own account partition
	ScopeNone ScopeKind = "none" // nothing; unknown roles land here
)

// Caller is the identity handed in by the authentication collaborator.
type Caller struct {
	ID   string
	Role CallerRole
}

// AccessScope is the resolved visibility of a caller for a single request.
type AccessScope struct {
	CallerID   string     `json:"callerId"`
	CallerRole CallerRole `json:"callerRole"`
	Kind       ScopeKind  `json:"kind"`
}

// Allows reports whether a record owned by ownerID is visible in this scope.
func (s AccessScope) Allows(ownerID string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeOwn:
		return s.CallerID != "" && ownerID == s.CallerID
	default:
		return false
	}
}
