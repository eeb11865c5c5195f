package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/order-imports/pkg/config"
	"github.com/siyuan-infoblox/order-imports/pkg/errors"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the global settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(o.viper)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(settings)
			if err != nil {
				return err
			}
			if used := o.viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set-style STYLE",
		Short:     "Save the format style (normal or aligned)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"normal", "aligned"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.SetStyle(o.viper, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), errors.InfoMsgSettingSaved+"\n", config.KeyFormatStyle, o.viper.GetString(config.KeyFormatStyle), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "toggle SETTING",
		Short:     "Flip a boolean setting and save it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.ToggleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, path, err := config.Toggle(o.viper, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), errors.InfoMsgSettingSaved+"\n", config.Toggles[args[0]], value, path)
			return nil
		},
	})

	return cmd
}
