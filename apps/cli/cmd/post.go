package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

func newPostCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value...]",
		Short: "Send key=value pairs as a JSON object in a POST request",
		Long: `Send a POST request whose body is a JSON object built from key=value pairs.

Each pair is split on its first '=', so values may contain '='. Values are
sent as strings. When a key repeats, the last value wins.

Examples:
  httpie post https://httpbin.org/post name=alice role=admin
  httpie post https://httpbin.org/post query=a=b`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := parser.NewPost(args[0], args[1:])
			if err != nil {
				return &usageError{err: err}
			}
			return o.send(cmd, command)
		},
	}
}
