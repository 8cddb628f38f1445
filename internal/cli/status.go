package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/termsuggest/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	CommonParams
}

// Status displays the effective configuration, program and cache state
func Status(params StatusParams) error {
	data, err := status.CollectAll(params.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	_, err = fmt.Fprint(params.stdout(), status.Render(data))
	return err
}
