package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldCategory targets the category label of a new expense.
	FieldCategory = "category"

	// FieldAmount targets the plaintext amount of a new expense.
	FieldAmount = "amount"
)

// maxLedgerAmount is the largest amount the ledger can hold in one entry.
// Amounts are encrypted as 32-bit unsigned integers.
var maxLedgerAmount = decimal.NewFromInt(math.MaxUint32)

// ExpenseValidator implements Validator for append commands.
// Both value and pointer forms of models.NewExpense are accepted.
type ExpenseValidator struct {
}

// NewExpenseValidator constructs a new ExpenseValidator
// and returns it as the Validator interface.
func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Returns ErrUnsupportedType if obj is not a known model.
func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewExpense:
		return v.validateNewExpense(ctx, value, fields...)
	case *models.NewExpense:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNewExpense(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ExpenseValidator) validateNewExpense(_ context.Context, expense models.NewExpense, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if _, ok := models.CategoryOrdinal(expense.Category); !ok {
				return ErrUnknownCategory
			}
		case FieldAmount:
			if !expense.Amount.IsPositive() {
				return ErrAmountNotPositive
			}
			if !expense.Amount.IsInteger() {
				return ErrAmountNotWhole
			}
			if expense.Amount.GreaterThan(maxLedgerAmount) {
				return ErrAmountOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
