package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/order-imports/pkg/config"
	"github.com/siyuan-infoblox/order-imports/pkg/formatter"
	"github.com/siyuan-infoblox/order-imports/pkg/organizer"
	"github.com/siyuan-infoblox/order-imports/pkg/version"
)

const (
	UseDescription   = "order-imports [flags] PATH"
	ShortDescription = "Import organizer - A tool to sort and align JavaScript/TypeScript imports"
	LongDescription  = `order-imports organizes the leading block of import statements of
JavaScript and TypeScript files.

Imports are ordered by kind:
1. Pinned imports (module path contains --pinned-marker)
2. Namespace imports (import * as X)
3. Named imports (import { A })
4. Mixed imports (import D, { A })
5. Default imports (import D)
6. Side-effect imports (import './styles.css')

Within each kind the "normal" style sorts by the length of the binding clause,
the "aligned" style sorts by module path and lines up every "from" keyword.
With --group, imports are split into external, alias and relative groups.

PATH can be either a single source file or a directory. A single file without
--in-place prints the organized import block. Directories are processed
recursively, skipping node_modules, vendor and hidden directories.

Settings are read from $HOME/.config/order-imports/config.yaml, ORDER_IMPORTS_*
environment variables, the nearest .orderimport.yml of each file and flags.`
)

// options holds the state of one command tree
type options struct {
	viper       *viper.Viper
	cfgFile     string
	inPlace     bool
	list        bool
	diff        bool
	noColor     bool
	showVersion bool
	version     version.Info
}

// NewRootCommand builds the order-imports command tree
func NewRootCommand(info version.Info) *cobra.Command {
	o := &options{viper: viper.New(), version: info}
	config.SetDefaults(o.viper)

	rootCmd := &cobra.Command{
		Use:               UseDescription,
		Short:             ShortDescription,
		Long:              LongDescription,
		Args:              o.validateArgs,
		RunE:              o.run,
		PersistentPreRunE: o.initConfig,
		SilenceUsage:      true,
	}

	def := organizer.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (default: $HOME/.config/order-imports/config.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	pf.String("style", string(def.Style), "Format style: normal (sort by binding length) or aligned (sort by path, align 'from')")
	pf.Bool("optimize-barrels", def.OptimizeBarrelImports, "Split named imports from barrel modules into direct sub-path imports")
	pf.Bool("group", def.GroupBySourceClass, "Group imports into external, alias and relative blocks")
	pf.Bool("remove-unused", def.RemoveUnused, "Drop imports whose bindings are not used in the file")
	pf.StringSlice("aliases", def.PathAliases, "Comma-separated path alias prefixes (e.g., @/,~/)")
	pf.StringSlice("barrel-targets", def.BarrelTargets, "Comma-separated module paths eligible for barrel splitting")
	pf.String("pinned-marker", def.PinnedMarker, "Module path substring of imports that always come first")
	pf.Bool("display-width", def.AlignDisplayWidth, "Align 'from' by terminal columns instead of specifier length (wide characters)")
	pf.StringSlice("exclude", nil, "Comma-separated glob patterns of paths to skip (e.g., dist,**/*.gen.ts)")

	flags := rootCmd.Flags()
	flags.BoolVar(&o.inPlace, "in-place", false, "Modify files in place instead of printing to stdout")
	flags.BoolVarP(&o.list, "list", "l", false, "List files whose imports would change")
	flags.BoolVarP(&o.diff, "diff", "d", false, "Print a unified diff of the changes")
	flags.IntP("jobs", "j", 0, "Number of files processed concurrently (default: number of CPUs)")
	flags.BoolVarP(&o.showVersion, "version", "v", false, "Show version information")

	bindings := map[string]string{
		config.KeyLogLevel:              "log-level",
		config.KeyLogFormat:             "log-format",
		config.KeyFormatStyle:           "style",
		config.KeyOptimizeBarrelImports: "optimize-barrels",
		config.KeyGroupBySourceClass:    "group",
		config.KeyRemoveUnused:          "remove-unused",
		config.KeyPathAliases:           "aliases",
		config.KeyBarrelTargets:         "barrel-targets",
		config.KeyPinnedMarker:          "pinned-marker",
		config.KeyAlignDisplayWidth:     "display-width",
		config.KeyExclude:               "exclude",
	}
	for key, name := range bindings {
		_ = o.viper.BindPFlag(key, pf.Lookup(name))
	}
	_ = o.viper.BindPFlag(config.KeyJobs, flags.Lookup("jobs"))

	rootCmd.AddCommand(newWatchCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))
	rootCmd.AddCommand(newVersionCmd(o))
	return rootCmd
}

func (o *options) validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if o.showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func (o *options) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.Init(o.viper, o.cfgFile); err != nil {
		return err
	}
	if o.noColor {
		color.NoColor = true
	}
	return setupLogging(cmd.ErrOrStderr(), o.viper.GetString(config.KeyLogLevel), o.viper.GetString(config.KeyLogFormat))
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	if o.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), o.version.Short())
		return nil
	}

	settings, err := config.Load(o.viper)
	if err != nil {
		return err
	}

	f := formatter.New(formatter.FormatterConfig{
		Resolver: config.NewResolver(settings.Organizer()),
		InPlace:  o.inPlace,
		List:     o.list,
		Diff:     o.diff,
		Exclude:  settings.Exclude,
		Jobs:     settings.Jobs,
		Out:      cmd.OutOrStdout(),
		Logger:   slog.Default(),
	})
	return f.ProcessPath(cmd.Context(), args[0])
}

// Execute runs the command tree until it finishes or the process is interrupted
func Execute(info version.Info) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(info)
	root.SilenceErrors = true
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	}
	return err
}
