package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/internal/config"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
	"github.com/odilia-app/odilia-common/internal/log"
)

func newWatchCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Reload a keymap file whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := g.keymapPath(args)
			if err != nil {
				return err
			}
			logger := g.logger.WithComponent("watch")

			km, report, err := config.NewLoader(g.opts).Load(path)
			if err != nil {
				logger.WithError(err).Warn("initial load failed")
			} else {
				logReload(logger, km, report)
			}

			w, err := config.NewWatcher(path, g.opts, func(km *keymap.Keymap, report *config.Report, err error) {
				if err != nil {
					logger.WithError(err).Error("reload failed")
					return
				}
				logReload(logger, km, report)
			})
			if err != nil {
				return err
			}
			defer w.Close()

			err = w.Run(cmd.Context())
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
	return cmd
}

func logReload(logger *log.Logger, km *keymap.Keymap, report *config.Report) {
	entry := logger.WithField("bindings", km.Len())
	if report.OK() {
		entry.Info("keymap loaded")
		return
	}
	entry.WithField("issues", report.Len()).Warn("keymap loaded with invalid bindings")
	for _, issue := range report.Issues {
		logger.Warn("%s", issue.Error())
	}
}
