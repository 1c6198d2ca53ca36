package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

func newGetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Long: `Send a GET request to an absolute http or https URL and print the response.

Examples:
  httpie get https://httpbin.org/get
  httpie get https://httpbin.org/json --filter .slideshow.title
  httpie -H "Authorization: Bearer $TOKEN" get https://api.example.com/me`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := parser.NewGet(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			return o.send(cmd, command)
		},
	}
}
