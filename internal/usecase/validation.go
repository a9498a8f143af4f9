package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// isNationalID accepts an 11 digit Turkish identity number.
func isNationalID(s string) bool {
	return validate.Var(s, "number,len=11") == nil
}

func isPercentage(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(decimal.NewFromInt(100))
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
