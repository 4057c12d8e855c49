package settings

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required fields that are missing or malformed
// after every configuration source has been consulted.
type ConfigurationError struct {
	Fields []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration incomplete: %s", strings.Join(e.Fields, ", "))
}
