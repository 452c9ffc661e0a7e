package analysis

import (
	"errors"
	"fmt"
)

// DataError marks an input problem that makes a run's numbers undefined
// (empty catalog, zero areas, duplicate product names). It aborts the whole
// run; no partial tables are returned.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string { return "data error: " + e.Msg }

func dataErrorf(format string, args ...any) error {
	return &DataError{Msg: fmt.Sprintf(format, args...)}
}

// IsDataError reports whether err is (or wraps) a DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
