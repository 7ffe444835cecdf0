package stylegen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the custom rules used
// by Options.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("gopkg", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return token.IsIdentifier(name) && name != "_"
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the options before a run.
func (o Options) Validate() error {
	err := validatorInstance().Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid options: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
}

// describeFieldError turns a validation failure into a flag-oriented message.
func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("--%s is required", field)
	case "oneof":
		return fmt.Sprintf("--%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "excludes":
		return fmt.Sprintf("--%s must not contain %q", field, fe.Param())
	case "gopkg":
		return fmt.Sprintf("--%s %q is not a valid Go package name", field, fe.Value())
	default:
		return fmt.Sprintf("--%s failed %s validation", field, fe.Tag())
	}
}
