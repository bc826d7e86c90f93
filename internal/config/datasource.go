package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DataSourceConfig selects and parameterizes the reference table store.
type DataSourceConfig struct {
	Driver                  string
	SupabaseURL             string
	SupabaseAnonKey         string
	SupabaseSchema          string
	SupabaseTimeout         time.Duration
	DBURL                   string
	DBDisablePreparedBinary bool
}

// ConfigurationError lists the variables that must be set before the
// service can read any data.
type ConfigurationError struct {
	Driver  string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "configuration error"
	}
	return fmt.Sprintf("%s data source configuration is missing: %s", e.Driver, strings.Join(e.Missing, ", "))
}

// Validate reports a *ConfigurationError when connection parameters are absent.
func (c DataSourceConfig) Validate() error {
	missing := make([]string, 0, 2)
	switch c.Driver {
	case DriverSupabase:
		if strings.TrimSpace(c.SupabaseURL) == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if strings.TrimSpace(c.SupabaseAnonKey) == "" {
			missing = append(missing, "SUPABASE_ANON_KEY")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DBURL) == "" {
			missing = append(missing, "DB_URL")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q", c.Driver)
	}

	if len(missing) > 0 {
		return &ConfigurationError{Driver: c.Driver, Missing: missing}
	}
	return nil
}

func loadDataSource() (DataSourceConfig, error) {
	driver, err := parseDriver(getEnv("DATA_SOURCE", DriverSupabase))
	if err != nil {
		return DataSourceConfig{}, err
	}

	timeout, err := time.ParseDuration(getEnv("SUPABASE_TIMEOUT", "10s"))
	if err != nil {
		return DataSourceConfig{}, fmt.Errorf("parse SUPABASE_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return DataSourceConfig{}, fmt.Errorf("SUPABASE_TIMEOUT must be > 0")
	}

	disablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return DataSourceConfig{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	return DataSourceConfig{
		Driver:                  driver,
		SupabaseURL:             getEnvFirst("SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey:         getEnvFirst("SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"),
		SupabaseSchema:          strings.TrimSpace(getEnv("SUPABASE_SCHEMA", "public")),
		SupabaseTimeout:         timeout,
		DBURL:                   strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary: disablePreparedBinary,
	}, nil
}

func parseDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DriverSupabase, DriverPostgres, DriverMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DATA_SOURCE %q: valid values are %s, %s, %s", v, DriverSupabase, DriverPostgres, DriverMemory)
	}
}
