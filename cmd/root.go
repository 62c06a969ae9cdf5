package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mj1618/appname/internal/launch"
	"github.com/mj1618/appname/internal/logging"
	"github.com/mj1618/appname/internal/ns"
	"github.com/mj1618/appname/internal/output"
	"github.com/mj1618/appname/internal/platform"
	"github.com/mj1618/appname/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "appname",
	Short: "Print the application's name and launch it as a regular app",
	Long: `Make this process a regular foreground macOS application, print its
human-readable name and finish launching.

The name is the first of CFBundleDisplayName, CFBundleName and the OS
process name that is present.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLaunch,
}

// newBinding opens the Objective-C runtime. Tests replace it.
var newBinding = platform.NewBinding

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level for stderr: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")
	addPolicyFlag(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flags directly so subcommand local
		// flags cannot shadow them.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		levelName, _ := rootCmd.PersistentFlags().GetString("log-level")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		color := !noColor && term.IsTerminal(int(os.Stderr.Fd()))

		cmd.SetContext(logging.Setup(cmd.Context(), cmd.ErrOrStderr(), level, color))
		return nil
	}
}

func addPolicyFlag(cmd *cobra.Command) {
	cmd.Flags().String("policy", "regular", "Activation policy: regular, accessory, prohibited")
}

func policyFlag(cmd *cobra.Command) (ns.ActivationPolicy, error) {
	s, _ := cmd.Flags().GetString("policy")
	return ns.ParseActivationPolicy(s)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	policy, err := policyFlag(cmd)
	if err != nil {
		return err
	}
	b, err := newBinding()
	if err != nil {
		return err
	}

	_, err = launch.Run(cmd.Context(), b, launch.Options{
		Policy: policy,
		Emit: func(rep launch.Report) error {
			return output.PrintName(rep.Name)
		},
	})
	return err
}
