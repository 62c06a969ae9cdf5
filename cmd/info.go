package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/appname/internal/launch"
	"github.com/mj1618/appname/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the application's name, its source and process metadata",
	Long: `Launch as the root command does, but print a full report instead of
the quoted name. With --no-activate the activation policy is left alone and
finishLaunching is not sent.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addPolicyFlag(infoCmd)
	infoCmd.Flags().Bool("no-activate", false, "Only inspect; do not change the activation policy or finish launching")
}

func runInfo(cmd *cobra.Command, args []string) error {
	policy, err := policyFlag(cmd)
	if err != nil {
		return err
	}
	b, err := newBinding()
	if err != nil {
		return err
	}

	if inspectOnly, _ := cmd.Flags().GetBool("no-activate"); inspectOnly {
		rep, err := launch.Inspect(cmd.Context(), b)
		if err != nil {
			return err
		}
		return output.Print(rep)
	}

	_, err = launch.Run(cmd.Context(), b, launch.Options{
		Policy: policy,
		Emit: func(rep launch.Report) error {
			return output.Print(rep)
		},
	})
	return err
}
