// Package config loads and validates the YAML run configuration of the
// stepreg command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/format"
	"github.com/arloliu/stepreg/regression"
	"github.com/arloliu/stepreg/selector"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is one selection run.
type Config struct {
	// Data is the path of the input table (.csv, optionally .zst/.s2/.lz4 compressed).
	Data string `yaml:"data" validate:"required"`
	// Compression overrides the codec inferred from the Data extension
	// ("none", "zstd", "s2" or "lz4"). Empty means infer.
	Compression string `yaml:"compression" validate:"omitempty,oneof=none zstd zst s2 lz4"`
	// Target is the name of the response column.
	Target string `yaml:"target" validate:"required"`
	// Initial lists features included before the first pass.
	Initial []string `yaml:"initial" validate:"unique,dive,required"`

	ThresholdIn   float64 `yaml:"threshold_in" validate:"gte=0.01,lte=0.1"`
	ThresholdOut  float64 `yaml:"threshold_out" validate:"gt=0,lt=1"`
	MinVars       int     `yaml:"min_vars" validate:"gte=0,ltefield=MaxVars"`
	MaxVars       int     `yaml:"max_vars" validate:"gte=1"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
	// Concurrency is the number of parallel forward-step fits; 0 uses GOMAXPROCS.
	Concurrency int `yaml:"concurrency" validate:"gte=0"`
	// MaxCondition bounds the design-matrix condition number accepted by the OLS fitter; 0 disables it.
	MaxCondition float64 `yaml:"max_condition" validate:"gte=0"`

	Legacy  bool `yaml:"legacy"`
	Verbose bool `yaml:"verbose"`
}

var validate = validator.New()

// Default returns a configuration with the selector defaults and no input.
func Default() Config {
	return Config{
		ThresholdIn:   selector.DefaultThresholdIn,
		ThresholdOut:  selector.DefaultThresholdOut,
		MinVars:       selector.DefaultMinVars,
		MaxVars:       selector.DefaultMaxVars,
		MaxIterations: selector.DefaultMaxIterations,
		Concurrency:   1,
		MaxCondition:  regression.DefaultMaxCondition,
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
//
// The result is not validated; callers apply command-line overrides first
// and then call Validate.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks field ranges and that MinVars does not exceed MaxVars.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strings.Join(msgs, "; "))
}

// DataCompression returns the codec of the input table: the Compression
// setting when present, otherwise the one implied by the Data extension.
func (c *Config) DataCompression() (format.CompressionType, error) {
	if c.Compression == "" {
		return format.CompressionFromPath(c.Data), nil
	}
	ct, ok := format.ParseCompression(c.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidConfig, c.Compression)
	}

	return ct, nil
}

// Options converts the configuration into selector options.
func (c *Config) Options() ([]selector.Option, error) {
	fitter, err := regression.NewOLSWithOptions(regression.WithMaxCondition(c.MaxCondition))
	if err != nil {
		return nil, err
	}

	opts := []selector.Option{
		selector.WithThresholdIn(c.ThresholdIn),
		selector.WithThresholdOut(c.ThresholdOut),
		selector.WithMaxVars(c.MaxVars),
		selector.WithMinVars(c.MinVars),
		selector.WithMaxIterations(c.MaxIterations),
		selector.WithConcurrency(c.Concurrency),
		selector.WithLegacy(c.Legacy),
		selector.WithFitter(fitter),
	}
	if len(c.Initial) > 0 {
		opts = append(opts, selector.WithInitial(c.Initial...))
	}

	return opts, nil
}
