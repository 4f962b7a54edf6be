package financials

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrTooManyPeriods is returned when a series holds more than MaxPeriods entries
var ErrTooManyPeriods = errors.New("too many periods supplied")

// ValidationError is one violated input constraint (fatal, no report)
type ValidationError struct {
	Field   string
	Message string
	cause   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.cause
}

// ValidationErrors collects every violated constraint
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Cross-field rule tags reported by the struct-level validation
const (
	tagCurrentLiabilities = "current_liabilities_lte_liabilities"
	tagCurrentAssets      = "current_assets_lt_assets"
	tagDebt               = "debt_lte_liabilities"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if key := fld.Tag.Get("key"); key != "" {
			return key
		}
		return fld.Name
	})
	validate.RegisterStructValidation(balanceSheetRules, Financials{})
}

// Validate checks the period-0 balance sheet and the input shape. It runs
// before any metric is derived; a non-nil result is fatal.
func Validate(f *Financials) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, toValidationError(fe))
	}
	return errs
}

// balanceSheetRules checks relations between the most recent balance sheet
// values. A rule applies only when the quantities it compares were given.
func balanceSheetRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(Financials)

	if f.CurrentLiabilities.Has() && f.Liabilities.Has() &&
		f.CurrentLiabilities.Latest() > f.Liabilities.Latest() {
		sl.ReportError(f.CurrentLiabilities, "current-liabilities", "CurrentLiabilities", tagCurrentLiabilities, "")
	}

	if f.CurrentAssets.Has() && f.Assets.Has() &&
		f.CurrentAssets.Latest() >= f.Assets.Latest() {
		sl.ReportError(f.CurrentAssets, "current-assets", "CurrentAssets", tagCurrentAssets, "")
	}

	if f.Liabilities.Has() && (f.ShortTermDebt.Has() || f.LongTermDebt.Has()) &&
		f.ShortTermDebt.Latest()+f.LongTermDebt.Latest() > f.Liabilities.Latest() {
		sl.ReportError(f.ShortTermDebt, "std", "ShortTermDebt", tagDebt, "")
	}
}

func toValidationError(fe validator.FieldError) ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case tagCurrentLiabilities:
		return ValidationError{Field: field, Message: "Current liabilities cannot exceed total liabilities"}
	case tagCurrentAssets:
		return ValidationError{Field: field, Message: "Current assets cannot exceed total assets"}
	case tagDebt:
		return ValidationError{Field: field, Message: "Long-term debt and short-term debt cannot exceed total liabilities"}
	case "min", "max":
		if fe.Kind() == reflect.Slice {
			return ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s: %s (got %d, max %d)", field, ErrTooManyPeriods, reflect.ValueOf(fe.Value()).Len(), MaxPeriods),
				cause:   ErrTooManyPeriods,
			}
		}
		if field == "reporting-period" {
			return ValidationError{Field: field, Message: "Reporting period must be between 1 and 4"}
		}
	}
	return ValidationError{Field: field, Message: fmt.Sprintf("%s failed validation: %s", field, fe.Tag())}
}
