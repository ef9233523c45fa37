package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/internal/plugin/lua"
)

func newRunCmd(g *globals) *cobra.Command {
	var (
		file    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT.lua",
		Short: "Run a Lua addon script against a keymap",
		Long: `Run a Lua script in the addon sandbox. The script can require
"odilia.keys" to parse bindings and "odilia.keymap" to query the keymap
(the built-in one unless --keymap is given). print writes to standard output.`,
		Example: `  odilia-keys run --keymap keymap.toml report.lua`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := g.loadKeymap(file)
			if err != nil {
				return err
			}

			state := lua.NewState(
				lua.WithKeymap(km),
				lua.WithOutput(cmd.OutOrStdout()),
				lua.WithExecutionTimeout(timeout),
			)
			defer state.Close()

			g.logger.WithComponent("run").
				WithField("script", args[0]).
				WithField("bindings", km.Len()).
				Debug("running script")
			return state.DoFile(args[0])
		},
	}

	cmd.Flags().StringVar(&file, "keymap", "", "keymap file (default built-in keymap)")
	cmd.Flags().DurationVar(&timeout, "timeout", lua.DefaultExecutionTimeout, "script execution limit (0 disables)")
	return cmd
}
