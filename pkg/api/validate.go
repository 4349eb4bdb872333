package api

import (
	"fmt"
	"strings"
)

// Validate only rejects an empty styles directory. Whether the path exists
// is left to the steps that use it.
func (c Configuration) Validate() error {
	if strings.TrimSpace(c.StylesDirectory) == "" {
		return fmt.Errorf("stylesDirectory is required")
	}
	return nil
}
