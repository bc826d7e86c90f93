package app

import (
	"net/url"
	"strings"

	"github.com/riskibarqy/football-emissions/internal/config"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// PostgresDSN returns the connection string of the postgres data source.
// Poolers such as Supabase's reject binary results of prepared statements,
// so the URL asks for text results unless it already says otherwise.
func PostgresDSN(ds config.DataSourceConfig) (string, error) {
	dsn := strings.TrimSpace(ds.DBURL)
	if dsn == "" {
		return "", &config.ConfigurationError{Driver: config.DriverPostgres, Missing: []string{"DB_URL"}}
	}
	if !ds.DBDisablePreparedBinary {
		return dsn, nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		// key=value DSNs are passed through untouched.
		return dsn, nil
	}
	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return dsn, nil
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// databaseName reads the database name for db.name on postgres spans from
// either URL or key=value form.
func databaseName(dsn string) string {
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		name, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"' `); name != "" {
			return name
		}
	}
	return ""
}
