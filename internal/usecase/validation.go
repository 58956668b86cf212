package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"repair_desk/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every reason an order cannot be saved. It is raised
// before any network call.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid order: " + strings.Join(e.Messages, "; ")
}

// OrderValidator checks the locally edited order before a save.
type OrderValidator struct {
	validate *validator.Validate
}

func NewOrderValidator() *OrderValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &OrderValidator{validate: v}
}

// Validate returns a *ValidationError holding one message per failing field.
func (v *OrderValidator) Validate(o entities.RepairOrder) error {
	var msgs []string
	if o.Status != "" && !o.Status.IsValid() {
		msgs = append(msgs, fmt.Sprintf("status %q is not a known order status", o.Status))
	}

	err := v.validate.Struct(o)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch field {
	case "customer.id":
		return "customer is required"
	case "technician_id":
		return "technician must be assigned"
	case "estimated_price":
		return "final price must be greater than zero"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	}
	return field + " is invalid"
}
