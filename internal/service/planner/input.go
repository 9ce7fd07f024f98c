package planner

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/heartmarshall/hifz-planner/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their "field" tag so errors use API names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})
	_ = v.RegisterValidation("pace", func(fl validator.FieldLevel) bool {
		return domain.PaceKey(fl.Field().String()).IsValid()
	})
	return v
}

// CreatePlanInput holds the parameters for creating a plan.
type CreatePlanInput struct {
	ContentID       int            `field:"content_id" validate:"min=1,max=114"`
	Pace            domain.PaceKey `field:"pace" validate:"required,pace"`
	IncludeRevision bool           `field:"include_revision"`
}

// Validate checks all fields and collects all errors.
func (i *CreatePlanInput) Validate() error {
	return toValidationError(validate.Struct(i))
}

// ReplacePlanInput carries a full plan sent back by the client.
type ReplacePlanInput struct {
	PlanID uuid.UUID
	Plan   *domain.Plan
}

// Validate checks all fields and collects all errors.
func (i *ReplacePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Plan == nil {
		errs = append(errs, domain.FieldError{Field: "plan", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toValidationError converts validator output into the domain error type.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min", "max":
		return "must be between 1 and 114"
	case "pace":
		return "must be SHORT, MEDIUM, or LONG"
	default:
		return "invalid value"
	}
}
