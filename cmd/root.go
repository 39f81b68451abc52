package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/papapumpkin/menukit/internal/config"
	"github.com/papapumpkin/menukit/internal/prompt"
	"github.com/papapumpkin/menukit/internal/ui"
)

// app carries the per-invocation state shared by a command tree.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	printer     *ui.Printer
	newPrompter func(in io.Reader, out io.Writer) prompt.Prompter
	cfg         config.Config
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:          in,
		out:         out,
		errOut:      errOut,
		printer:     ui.NewWithWriter(errOut, ui.ColorEnabled(errOut)),
		newPrompter: prompt.New,
	}
}

// prompter returns a Prompter that reads from stdin and draws on stderr,
// keeping stdout free for results.
func (a *app) prompter() prompt.Prompter {
	return a.newPrompter(a.in, a.errOut)
}

// ExecuteMenuCLI runs menu-cli and exits with its status code.
func ExecuteMenuCLI() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.execute(newMenuCLICmd(a)))
}

// ExecuteMenuUtils runs menu-utils and exits with its status code.
func ExecuteMenuUtils() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.execute(newMenuUtilsCmd(a)))
}

// execute runs root and maps its result to a process exit code.
func (a *app) execute(root *cobra.Command) int {
	return a.exitCode(root.Execute())
}

// exitCode reports err once and returns the status for it. Cancellation is
// a clean exit.
func (a *app) exitCode(err error) int {
	if err == nil || errors.Is(err, prompt.ErrCanceled) {
		return 0
	}
	a.printer.Error(err.Error())
	return 1
}

// addCommonFlags registers the flags both tools accept.
func addCommonFlags(flags *pflag.FlagSet, dataDefault string) {
	flags.String("config", "", "config file (default .menukit.toml)")
	flags.StringP("data", "d", dataDefault, "path to menu JSON")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("no-color", false, "disable colored output")
}

// setup reads the config file, binds root's flags into viper and resolves
// the effective configuration. It runs before every command in the tree.
func (a *app) setup(root *cobra.Command, keys map[string]string) error {
	initConfig(root)
	for key, name := range keys {
		if f := root.PersistentFlags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.NoColor {
		a.printer.SetColor(false)
	}
	a.cfg = cfg
	if cfg.Verbose {
		rows := [][2]string{
			{"config file", viper.ConfigFileUsed()},
			{"data", cfg.DataPath},
		}
		if _, ok := keys["max"]; ok {
			rows = append(rows, [2]string{"max", cfg.MaxRaw})
		}
		a.printer.Settings("config", append(rows, [2]string{"journal", cfg.Journal}))
	}
	return nil
}

func initConfig(root *cobra.Command) {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.FileName)
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
