package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pickup/internal/adapters/out/notify"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/pkg/errs"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultHTTPPort      = "8080"
	DefaultSubmitTimeout = 10 * time.Second
	DefaultTimezone      = "Europe/Bucharest"
	DefaultBlockedDates  = "2025-01-01,2025-05-01,2025-12-25,2025-12-26"
)

type Config struct {
	HTTPPort      string
	LogLevel      slog.Level
	SubmitURL     string
	SubmitTimeout time.Duration
	BlockedDates  schedule.BlockList
	Location      *time.Location
	Pricing       carpet.Pricing
}

// LoadConfig reads the configuration through getenv (usually os.Getenv after
// the .env file was loaded). Every invalid variable is reported, not just the first.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var errList []error
	config := Config{
		HTTPPort:  env("HTTP_PORT", DefaultHTTPPort),
		SubmitURL: env("SUBMIT_URL", notify.DefaultEndpoint),
	}

	if err := config.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "INFO"))); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	if port, err := strconv.Atoi(config.HTTPPort); err != nil || port < 1 || port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("HTTP_PORT", config.HTTPPort, 1, 65535))
	}

	timeout, err := time.ParseDuration(env("SUBMIT_TIMEOUT", DefaultSubmitTimeout.String()))
	switch {
	case err != nil:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SUBMIT_TIMEOUT", err))
	case timeout < 0:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SUBMIT_TIMEOUT", fmt.Errorf("%s is negative", timeout)))
	default:
		config.SubmitTimeout = timeout
	}

	blocked, err := schedule.ParseBlockList(splitList(env("BLOCKED_DATES", DefaultBlockedDates)))
	if err != nil {
		errList = append(errList, fmt.Errorf("BLOCKED_DATES: %w", err))
	}
	config.BlockedDates = blocked

	location, err := time.LoadLocation(env("TIMEZONE", DefaultTimezone))
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("TIMEZONE", err))
	}
	config.Location = location

	config.Pricing = carpet.DefaultPricing()
	amounts := []struct {
		key    string
		target *float64
	}{
		{"PRICE_PER_SQM", &config.Pricing.PricePerSqm},
		{"MIN_PRICE", &config.Pricing.MinPrice},
		{"FREE_SHIPPING_THRESHOLD", &config.Pricing.FreeShippingThreshold},
		{"SHIPPING_FEE", &config.Pricing.ShippingFee},
	}
	for _, a := range amounts {
		raw := env(a.key, "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(a.key, err))
			continue
		}
		*a.target = v
	}
	if err := config.Pricing.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
