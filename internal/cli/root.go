package cli

import (
	"errors"
	stdlog "log"
	"strings"

	"github.com/fatih/color"
	"github.com/gomac/finder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables mirroring the global flags,
// FINDER_VERBOSE for --verbose.
const EnvPrefix = "FINDER"

// AliasFunc creates an alias to src at dst.
type AliasFunc func(src, dst string) error

var errSomeFailed = errors.New("not all paths could be processed")

// NewRootCommand builds the alias command tree. Detection and resolution go
// through resolver, creation through create.
func NewRootCommand(version string, resolver finder.Resolver, create AliasFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "alias",
		Short: "alias inspects, resolves and creates macOS Finder aliases.",
		Long: `alias works with Finder aliases, the bookmark based links created by
the Finder's "Make Alias" command. Resolution is done by the OS so aliases
to moved or renamed files are still followed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("no-color") {
				color.NoColor = true
			}
			if v.GetBool("verbose") {
				finder.SetLogger(stdlog.New(cmd.ErrOrStderr(), "finder: ", 0))
			} else {
				finder.SetLogger(nil)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Log host failures and followed aliases to stderr.")
	flags.Bool("no-color", false, "Disable colored output.")
	flags.Int("max-hops", finder.MaxHops, "Maximum number of aliases followed by eval.")
	_ = v.BindPFlags(flags)

	rootCmd.AddCommand(NewCheckCommand(resolver))
	rootCmd.AddCommand(NewResolveCommand(resolver))
	rootCmd.AddCommand(NewEvalCommand(resolver, v))
	rootCmd.AddCommand(NewCreateCommand(create))

	return rootCmd
}
