package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
)

// DataSourceError reports a failed read against the reference table store.
type DataSourceError struct {
	Table string
	Op    string
	Err   error
}

func NewDataSourceError(table, op string, err error) *DataSourceError {
	return &DataSourceError{Table: table, Op: op, Err: err}
}

func (e *DataSourceError) Error() string {
	if e == nil {
		return "data source error"
	}
	if e.Err == nil {
		return fmt.Sprintf("data source %s %s failed", e.Op, e.Table)
	}
	return fmt.Sprintf("data source %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsDataSourceError extracts a DataSourceError anywhere in err's chain.
func AsDataSourceError(err error) (*DataSourceError, bool) {
	var dsErr *DataSourceError
	if errors.As(err, &dsErr) {
		return dsErr, true
	}
	return nil, false
}
