package handlers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators adds the ledger-specific tags (txnkind, txnstatus, sortkey)
// to gin's validator. Safe to call more than once; every call reports the
// outcome of the first registration.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		registerValidatorsErr = registerValidators(binding.Validator.Engine())
	})
	return registerValidatorsErr
}

func registerValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", engine)
	}
	for tag, fn := range map[string]validator.Func{
		"txnkind":   validateTxnKind,
		"txnstatus": validateTxnStatus,
		"sortkey":   validateSortKey,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func validateTxnKind(fl validator.FieldLevel) bool {
	return domain.TransactionKind(strings.ToLower(fl.Field().String())).IsValid()
}

func validateTxnStatus(fl validator.FieldLevel) bool {
	return domain.TransactionStatus(strings.ToLower(fl.Field().String())).IsValid()
}

func validateSortKey(fl validator.FieldLevel) bool {
	return domain.SortKey(fl.Field().String()).IsValid()
}
