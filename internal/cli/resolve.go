package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolveCommand creates the resolve command, which prints the version of a
// service's client crate resolved in the current project, or "latest".
func (c *CLI) resolveCommand() *cobra.Command {
	var opts syncOptions

	cmd := &cobra.Command{
		Use:   "resolve <service>",
		Short: "Print the locally resolved version of a service client",
		Long: `Print the version of aws-sdk-<service> in the current cargo project's
dependency graph, or "latest" if the project does not depend on it.`,
		Example: `  clidoc resolve s3
  clidoc resolve --lockfile --manifest-path ../app dynamodb`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := lookupService(args[0])
			if err != nil {
				return err
			}
			opts.merge(cmd, c.config)

			version, err := c.resolveVersion(cmd.Context(), cmd, svc, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
