package cli

import (
	"fmt"

	"github.com/gomac/finder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(resolver finder.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Report which paths are Finder aliases.",
		Long:  `Reports for each path if it is an alias. Exits with status 1 if any path is not an alias.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				if resolver.IsAlias(path) {
					fmt.Fprintf(out, "%s: %s\n", PathColor(path), SuccessColor("alias"))
					continue
				}
				failed++
				fmt.Fprintf(out, "%s: %s\n", PathColor(path), WarningColor("not an alias"))
			}
			return summarize(failed, len(args))
		},
	}
}

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(resolver finder.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Print the target of each alias.",
		Long: `Prints the absolute path of the target of each alias, one per line.
A warning is printed to stderr when the bookmark is stale, the target was
found but moved since the alias was created.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for _, path := range args {
				res, err := resolver.Resolve(path)
				if err != nil {
					failed++
					fmt.Fprintln(errOut, ErrorColor(err))
					continue
				}
				if res.Stale {
					fmt.Fprintf(errOut, "%s: %s\n", PathColor(path), WarningColor("stale bookmark, target was moved"))
				}
				fmt.Fprintln(out, res.Path)
			}
			return summarize(failed, len(args))
		},
	}
}

// NewEvalCommand creates the 'eval' subcommand.
func NewEvalCommand(resolver finder.Resolver, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "eval PATH...",
		Short: "Follow aliases and symlinks to the final file.",
		Long:  `Follows any combination of aliases and symbolic links and prints the final path.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			maxHops := v.GetInt("max-hops")
			failed := 0
			for _, path := range args {
				final, err := finder.EvallinksWith(resolver, path, maxHops)
				if err != nil {
					failed++
					fmt.Fprintln(errOut, ErrorColor(err))
					continue
				}
				fmt.Fprintln(out, final)
			}
			return summarize(failed, len(args))
		},
	}
}

// NewCreateCommand creates the 'create' subcommand.
func NewCreateCommand(create AliasFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "create SRC DST",
		Short: "Create an alias to SRC at DST.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			if err := create(src, dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", SuccessColor("created"), PathColor(dst), PathColor(src))
			return nil
		},
	}
}

func summarize(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d failed", errSomeFailed, failed, total)
}
