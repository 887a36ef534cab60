package drivers

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a driver keyword that is not in the registry.
// Callers recover by proceeding without a driver.
var ErrNotFound = errors.New("drivers: unknown driver keyword")

// ConfigError reports a malformed driver capability description, such
// as a duplicate or unpaired roll sentinel in the media list.
type ConfigError struct {
	Driver string
	Reason string
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("drivers: %s: %s", e.Driver, e.Reason)
}
