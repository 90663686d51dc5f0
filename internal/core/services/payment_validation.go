package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/dto"
)

// FormErrorMessage summarises any rejected payment submission.
const FormErrorMessage = "Invalid form data. Please check your inputs."

// MaxAmountScale is the number of decimal places an amount may carry.
const MaxAmountScale = 2

// MaxAmount is the largest amount a single payment test may carry.
var MaxAmount = decimal.NewFromInt(100_000_000)

// maxAmountDigits bounds the coefficient before any arithmetic touches it.
const maxAmountDigits = 20

// amountRangeMessage is reported for positive amounts that are too large or too precise.
const amountRangeMessage = "Amount must not exceed 10,00,00,000 and may have at most 2 decimal places."

// paymentFieldMessages are the user-facing messages per request field, keyed by JSON name.
var paymentFieldMessages = map[string]string{
	"cardNumber": "Card number must be 13-16 digits.",
	"expiryDate": "Use MM/YY format.",
	"cvv":        "CVV must be 3-4 digits.",
	"amount":     "Amount must be positive.",
	"cardType":   "Card type must be one of Visa, Mastercard, Amex or Other.",
}

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// newPaymentValidator builds a validator that reports JSON field names and understands
// decimal amounts and the digits/expiry tags.
func newPaymentValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		// Only the sign reaches the tags; converting huge exponents to float is costly.
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return float64(d.Sign())
		}
		return nil
	}, decimal.Decimal{})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})

	// Tags only see the amount's sign, so magnitude and scale are checked here.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(dto.SubmitPaymentRequest)
		if req.Amount.IsPositive() && !amountWithinBounds(req.Amount) {
			sl.ReportError(req.Amount, "amount", "Amount", "amount", "")
		}
	}, dto.SubmitPaymentRequest{})

	return v
}

// amountWithinBounds reports whether d is at most MaxAmount with at most
// MaxAmountScale decimal places. Exponent and digit checks come first so huge
// or tiny literals such as 1e200000 are rejected without expanding them.
func amountWithinBounds(d decimal.Decimal) bool {
	if d.NumDigits() > maxAmountDigits {
		return false
	}
	exp := d.Exponent()
	if exp > 0 && int(exp)+d.NumDigits() > maxAmountDigits {
		return false
	}
	if exp < -maxAmountDigits {
		return false
	}
	if d.GreaterThan(MaxAmount) {
		return false
	}
	return d.Equal(d.Truncate(MaxAmountScale))
}

// validatePaymentRequest returns nil or an *apperrors.ValidationError with one
// message per failing field.
func validatePaymentRequest(v *validator.Validate, req dto.SubmitPaymentRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := apperrors.NewValidationError(FormErrorMessage)
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := verr.Fields[field]; seen {
			continue
		}
		msg, ok := paymentFieldMessages[field]
		if !ok {
			msg = "Invalid value."
		}
		if fe.Tag() == "amount" {
			msg = amountRangeMessage
		}
		verr.Add(field, msg)
	}
	return verr
}
