package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPolicyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective convergence policy as YAML",
		Long: `Print the policy that a solver subcommand would run with after
applying --config and any explicit --tol, --max-iter or --strict. The
output is a valid --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := g.policy(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(policy); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
