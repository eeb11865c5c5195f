package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/order-imports/pkg/config"
	"github.com/siyuan-infoblox/order-imports/pkg/errors"
	"github.com/siyuan-infoblox/order-imports/pkg/formatter"
	"github.com/siyuan-infoblox/order-imports/pkg/guard"
	"github.com/siyuan-infoblox/order-imports/pkg/watcher"
)

func newWatchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] DIR",
		Short: "Organize imports of source files as they are saved",
		Long: `watch organizes the import block of every source file below DIR each time
it is written. Files the watcher itself has just written are not organized
again until the cooldown has passed and their content changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(o.viper)
			if err != nil {
				return err
			}
			if !settings.OrganizeOnSave {
				fmt.Fprintln(cmd.OutOrStdout(), errors.InfoMsgOrganizeOnSaveDisabled)
				return nil
			}

			resolver := config.NewResolver(settings.Organizer())
			w, err := watcher.New(watcher.Config{
				Root:    args[0],
				Exclude: settings.Exclude,
				Formatter: formatter.New(formatter.FormatterConfig{
					Resolver: resolver,
					Exclude:  settings.Exclude,
					Out:      cmd.OutOrStdout(),
					Logger:   slog.Default(),
				}),
				Resolver: resolver,
				Guard:    guard.New(settings.Cooldown),
				Logger:   slog.Default(),
			})
			if err != nil {
				return err
			}

			slog.Info("watching for changes", "root", args[0], "cooldown", settings.Cooldown)
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().Duration("cooldown", config.DefaultCooldown, "How long a file written by the watcher is ignored")
	_ = o.viper.BindPFlag(config.KeyCooldown, cmd.Flags().Lookup("cooldown"))
	return cmd
}
