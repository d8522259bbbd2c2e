package result

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("result_id", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Item is implemented by every result type that can be nested in a StepResult.
type Item interface {
	ResultIdentifier() string
}

// Result is the base of every step result. It carries the identity of the step
// that produced it and the UserInfo bag.
type Result struct {
	Identifier string    `validate:"required,result_id"`
	StartDate  time.Time
	EndDate    time.Time
	UserInfo   UserInfo
}

// NewResult returns a Result for identifier with both dates set to now.
func NewResult(identifier string) Result {
	now := time.Now()
	return Result{Identifier: identifier, StartDate: now, EndDate: now}
}

// ResultIdentifier returns the identifier of the step that produced the result.
func (r *Result) ResultIdentifier() string {
	if r == nil {
		return ""
	}
	return r.Identifier
}

// Duration reports how long the step was on screen. Unset or inverted dates yield zero.
func (r *Result) Duration() time.Duration {
	if r == nil || r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return 0
	}
	return r.EndDate.Sub(r.StartDate)
}

// Validate checks the identity fields of the result.
func (r *Result) Validate() error {
	if r == nil {
		return stepkiterrors.NewValidationError("result", "result is nil", nil)
	}

	if err := validatorInstance().Struct(r); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			return stepkiterrors.NewValidationError("identifier", fmt.Sprintf("identifier %q failed validation for tag '%s'", r.Identifier, ves[0].Tag()), err)
		}
		return stepkiterrors.NewValidationError("result", err.Error(), err)
	}

	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return stepkiterrors.NewValidationError("end_date", "end date precedes start date", nil)
	}

	return nil
}
