// Package validation turns raw invoice form fields into either a typed input
// or field-level error messages. It never panics and never returns an error:
// the outcome is always a Result.
package validation

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/money"
)

// Form field names, as submitted by the invoice forms.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	fieldForm       = "form"
)

const (
	MsgCustomer = "Please select a customer"
	MsgAmount   = "Please enter an amount greater than $0"
	MsgStatus   = "Please select an invoice status"
	msgForm     = "Invalid form submission"
)

var fieldMessages = map[string]string{
	FieldCustomerID: MsgCustomer,
	FieldAmount:     MsgAmount,
	FieldStatus:     MsgStatus,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// FieldErrors maps a form field to its messages.
type FieldErrors map[string][]string

// Add appends msg to field's messages, skipping duplicates.
func (fe FieldErrors) Add(field, msg string) {
	for _, m := range fe[field] {
		if m == msg {
			return
		}
	}
	fe[field] = append(fe[field], msg)
}

// InvoiceInput is a validated invoice submission.
type InvoiceInput struct {
	CustomerID  string               `form:"customerId" validate:"required"`
	AmountCents int64                `form:"amount" validate:"gt=0"`
	Status      models.InvoiceStatus `form:"status" validate:"oneof=pending paid"`
}

// Result is either a valid Input (Errors empty) or a set of field errors.
type Result struct {
	Input  InvoiceInput
	Errors FieldErrors
}

// Valid reports whether the submission passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ParseInvoiceForm reads customerId, amount and status from values.
// The amount is coerced from decimal text to integer cents; text that does
// not parse is treated as zero and fails the positive-amount rule.
func ParseInvoiceForm(values url.Values) Result {
	in := InvoiceInput{
		CustomerID: strings.TrimSpace(values.Get(FieldCustomerID)),
		Status:     models.InvoiceStatus(values.Get(FieldStatus)),
	}
	if cents, err := money.ParseAmount(values.Get(FieldAmount)); err == nil {
		in.AmountCents = cents
	}

	return Result{Input: in, Errors: check(in)}
}

func check(in InvoiceInput) FieldErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	fe := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add(fieldForm, msgForm)
		return fe
	}
	for _, v := range verrs {
		msg, ok := fieldMessages[v.Field()]
		if !ok {
			msg = msgForm
		}
		fe.Add(v.Field(), msg)
	}
	return fe
}
