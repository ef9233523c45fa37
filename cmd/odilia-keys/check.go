package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/internal/config"
	"github.com/odilia-app/odilia-common/internal/config/loader"
)

func newCheckCmd(g *globals) *cobra.Command {
	var (
		withDefaults bool
		strict       bool
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate a keymap file",
		Long: fmt.Sprintf(`Load a keymap file and list its bindings and any rejected declarations.
FILE defaults to $ODILIA_KEYMAP, then the user keymap in the config directory.
The format is chosen by extension: %s.
The exit status is 1 when any declaration was rejected.`, strings.Join(loader.Extensions(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := g.keymapPath(args)
			if err != nil {
				return err
			}

			opts := g.opts
			if cmd.Flags().Changed("with-defaults") {
				opts.IncludeDefaults = withDefaults
			}
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}

			km, report, err := config.NewLoader(opts).Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				fmt.Fprintln(out, bindingsTable(km).Render())
			}
			if report.OK() {
				fmt.Fprintf(out, "%s %s: %d bindings\n", green("OK"), path, km.Len())
				return nil
			}

			fmt.Fprintln(out, issuesTable(report).Render())
			fmt.Fprintf(out, "%s %s: %d invalid binding declaration(s)\n", red("FAIL"), path, report.Len())
			return errFailed
		},
	}

	cmd.Flags().BoolVar(&withDefaults, "with-defaults", false, "merge the built-in keymap under the file")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown fields")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print problems")
	return cmd
}
