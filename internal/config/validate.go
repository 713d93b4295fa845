package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Station.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("station: %w", err))
	}
	if err := c.Output.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks StationConfig for errors.
func (c *StationConfig) Validate() error {
	return checkStruct(c)
}

// Validate checks OutputConfig for errors.
func (c *OutputConfig) Validate() error {
	return checkStruct(c)
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	return checkStruct(c)
}

func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("invalid %s: %v (%s)", fe.Field(), fe.Value(), describeRule(fe)))
	}
	return errors.Join(errs...)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
