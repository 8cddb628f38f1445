package cli

import (
	"github.com/NikitaCOEUR/termsuggest/internal/render"
)

// DescribeParams contains parameters for the Describe command
type DescribeParams struct {
	CommonParams
	Format string // text, yaml or json
}

// Describe prints the completion spec
func Describe(params DescribeParams) error {
	c, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}
	return render.Spec(params.stdout(), c.spec, params.Format)
}
