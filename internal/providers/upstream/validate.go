package upstream

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks a decoded payload against its `validate` struct tags.
// A violation is reported as ErrMalformedResponse.
func Validate(service string, payload any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(payload); err != nil {
		return Malformed(service, err)
	}
	return nil
}
