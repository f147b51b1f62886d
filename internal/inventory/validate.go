package inventory

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	pkgerrors "stockledger/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := value.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Operator-facing messages keyed by struct namespace. Fields are validated in
// declaration order, so the first failure decides the surfaced message.
var fieldMessages = map[string]string{
	"CreateProductInput.Name":          "Product name cannot be empty.",
	"CreateProductInput.Price":         "Price cannot be negative.",
	"AddSupplierInput.Name":            "Supplier name cannot be empty.",
	"AddSupplierInput.Contact":         "Supplier contact cannot be empty.",
	"AddStockInput.Quantity":           "Quantity must be a positive integer.",
	"RemoveStockInput.Quantity":        "Quantity must be a positive integer.",
	"UpdateProductPriceInput.NewPrice": "Price cannot be negative.",
}

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, validationMessage(errs[0]))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
