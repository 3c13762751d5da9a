package ledger

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
)

// rolePolicy is the explicit role -> visibility table. Roles missing here are denied.
var rolePolicy = map[domain.CallerRole]domain.ScopeKind{
	domain.RoleAdmin:    domain.ScopeAll,
	domain.RoleViewer:   domain.ScopeAll,
	domain.RoleMerchant: domain.ScopeOwn,
	domain.RoleCustomer: domain.ScopeOwn,
}

// ScopeFor resolves the visibility of a caller without touching any data.
func ScopeFor(caller domain.Caller) (domain.AccessScope, error) {
	kind, ok := rolePolicy[caller.Role]
	if !ok {
		return domain.AccessScope{CallerID: caller.ID, CallerRole: caller.Role, Kind: domain.ScopeNone},
			fmt.Errorf("%w: role %q has no ledger access", apperrors.ErrForbidden, caller.Role)
	}
	if kind == domain.ScopeOwn && caller.ID == "" {
		return domain.AccessScope{CallerRole: caller.Role, Kind: domain.ScopeNone},
			fmt.Errorf("%w: caller id is required for role %q", apperrors.ErrForbidden, caller.Role)
	}
	return domain.AccessScope{CallerID: caller.ID, CallerRole: caller.Role, Kind: kind}, nil
}

// ResolveScope returns the transactions the caller is entitled to see.
// Privileged roles get every account; standard roles get their own partition only.
func ResolveScope(ctx context.Context, caller domain.Caller, source portsrepo.TransactionSource) ([]domain.Transaction, domain.AccessScope, error) {
	scope, err := ScopeFor(caller)
	if err != nil {
		return nil, scope, err
	}

	var txns []domain.Transaction
	switch scope.Kind {
	case domain.ScopeAll:
		txns, err = source.ListAll(ctx)
	case domain.ScopeOwn:
		txns, err = source.ListByOwner(ctx, scope.CallerID)
	}
	if err != nil {
		return nil, scope, fmt.Errorf("%w: %w", apperrors.ErrSourceUnavailable, err)
	}

	if scope.Kind == domain.ScopeAll {
		return txns, scope, nil
	}

	// never trust the source to have partitioned correctly
	visible := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if scope.Allows(t.OwnerID) {
			visible = append(visible, t)
		}
	}
	return visible, scope, nil
}
