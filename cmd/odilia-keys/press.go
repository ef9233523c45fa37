package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/event"
	"github.com/odilia-app/odilia-common/input/key"
	"github.com/odilia-app/odilia-common/input/mode"
)

func newPressCmd(g *globals) *cobra.Command {
	var (
		modeName string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "press BINDING...",
		Short: "Look up bindings and publish their actions",
		Long: `Look up each binding in the keymap, starting in --mode, and publish the
bound action on an event bus. A ChangeMode action switches the mode used for
the bindings after it. The built-in keymap is used unless --keymap is given.
The exit status is 1 when any binding fails to parse or is unbound.`,
		Example: `  odilia-keys press Odilia+b h Shift+h
  odilia-keys press --keymap keymap.toml --mode BrowseMode t`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := mode.Parse(modeName)
			if err != nil {
				return err
			}
			km, err := g.loadKeymap(file)
			if err != nil {
				return err
			}

			logger := g.logger.WithComponent("press")
			bus := event.NewBus()

			_, err = bus.SubscribeFunc(event.TopicModeChange, func(_ context.Context, ev event.ScreenReaderEvent) error {
				if m, ok := ev.Mode(); ok {
					current = m
				}
				return nil
			}, event.WithPriority(event.PriorityHigh))
			if err != nil {
				return err
			}
			_, err = bus.SubscribeFunc(event.TopicAll, func(_ context.Context, ev event.ScreenReaderEvent) error {
				logger.WithField("topic", ev.Topic().String()).Info("%s", ev)
				return nil
			}, event.WithPriority(event.PriorityLow))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, spec := range args {
				b, err := key.ParseInMode(spec, current.String())
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %s\n", current, spec, red(key.ErrorKind(err).String()))
					continue
				}

				entry, ok := km.Lookup(b)
				if !ok {
					failed++
					fmt.Fprintf(out, "%s %s: %s\n", b.Mode, b, yellow("unbound"))
					continue
				}

				fmt.Fprintf(out, "%s %s -> %s\n", b.Mode, b, entry.Event)
				if err := bus.Publish(cmd.Context(), entry.Event); err != nil {
					return err
				}
			}

			stats := bus.Stats()
			logger.WithField("published", stats.EventsPublished).Debug("done")
			if failed > 0 {
				g.logger.Warn("%d of %d bindings failed", failed, len(args))
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", mode.CommandMode.String(), "mode to start in")
	cmd.Flags().StringVar(&file, "keymap", "", "keymap file (default built-in keymap)")
	return cmd
}
