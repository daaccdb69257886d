package property

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no configuration exists for the property.
var ErrNotFound = errors.New("property not found")

// ConfigurationError reports a stored configuration that could not be
// loaded or parsed.
type ConfigurationError struct {
	PropertyID int64
	Err        error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("property %d configuration: %v", e.PropertyID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
