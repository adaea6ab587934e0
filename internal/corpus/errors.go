package corpus

import "fmt"

// LoadErrorCode classifies why a data source could not be loaded.
type LoadErrorCode string

const (
	ErrCodeMissingSource LoadErrorCode = "MISSING_SOURCE"
	ErrCodeMalformed     LoadErrorCode = "MALFORMED"
	ErrCodeInvalid       LoadErrorCode = "INVALID"
)

// LoadError is returned when a corpus file is missing, unparsable or fails
// validation. Source is the file name inside the data directory.
type LoadError struct {
	Source  string
	Code    LoadErrorCode
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Source, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }
