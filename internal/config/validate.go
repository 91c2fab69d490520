package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/pkg/chart"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their config key rather than the Go name.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d >= 0
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the config for errors and returns structured error messages.
// Unknown palette and variant names are not errors: they fall back to the
// defaults when resolved.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but chartkit only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest chartkit release.")
	}

	for name := range cfg.Charts {
		if _, err := chart.ParseKind(name); err != nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown chart type '%s' under 'charts'", name),
				"Use one of: "+kindNames()+".")
		}
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError turns the first validator failure into a
// structured CONFIG error naming the offending key.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !stderrors.As(err, &ves) || len(ves) == 0 {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid config", "Check your .chartkit.yaml.")
	}

	fe := ves[0]
	key := configKey(fe)
	return errors.WrapWithCode(err, errors.ErrConfig,
		fmt.Sprintf("'%s' has an invalid value: %v", key, fe.Value()),
		describeRule(fe))
}

// configKey renders a validator namespace like "Config.defaults.width" or
// "Config.charts[bar].bar_gap" as a dotted config key.
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

// describeRule explains a failed validation tag as a fix.
func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return fmt.Sprintf("Use a value of at least %s.", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Use a value of at most %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Use a value greater than %s.", fe.Param())
	case "oneof":
		return "Use one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "duration":
		return "Use a Go duration like 800ms or 1.5s."
	default:
		return fmt.Sprintf("Check the '%s' rule for this key.", fe.Tag())
	}
}

func kindNames() string {
	var names []string
	for _, k := range chart.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
