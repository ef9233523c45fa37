package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/input/key"
)

func newParseCmd(g *globals) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "parse BINDING...",
		Short: "Parse key binding specifications",
		Example: `  odilia-keys parse Odilia+h "Control+Shift+Alt+Meta+Applications+Odilia+s:3"
  odilia-keys parse --mode BrowseMode Shift+h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable()
			tw.AppendHeader(tableRow("Input", "Binding", "Key", "Repeat", "Mode", "Modifiers", "Mask", "Error"))

			failed := 0
			for _, spec := range args {
				b, err := parseBinding(spec, modeName)
				if err != nil {
					failed++
					g.logger.WithField("input", spec).Debug("%v", err)
					tw.AppendRow(tableRow(spec, "", "", "", "", "", "", red(key.ErrorKind(err).String())))
					continue
				}
				tw.AppendRow(tableRow(
					spec,
					b.String(),
					string(b.Key),
					b.Repeat,
					b.Mode.String(),
					b.Mods.String(),
					fmt.Sprintf("0x%04x", uint16(b.Mods)),
					"",
				))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())

			if failed > 0 {
				g.logger.Warn("%d of %d bindings failed to parse", failed, len(args))
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "mode to place the bindings in (default CommandMode)")
	return cmd
}

func parseBinding(spec, modeName string) (key.KeyBinding, error) {
	if modeName == "" {
		return key.Parse(spec)
	}
	return key.ParseInMode(spec, modeName)
}
