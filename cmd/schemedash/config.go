package main

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schemedash/schemedash/internal/config"
	"github.com/schemedash/schemedash/internal/report"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify schemedash configuration",
	Long: `View and modify schemedash configuration.

Schemedash reads .schemedash.yaml from the working directory. A global
config at ~/.config/schemedash/config.yaml provides defaults, and command
line flags override both.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after merging the global file, the local file and flags.",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configInitCmd writes a starter config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .schemedash.yaml",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by dot-notation key path.

Examples:
  schemedash config get district
  schemedash config get source.base_url
  schemedash config get --global capacity`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Values are parsed for the key they set: concurrency and capacity take
integers, color_seed an unsigned integer, everything else text.
By default, writes to .schemedash.yaml in the current directory.
Use --global to write to ~/.config/schemedash/config.yaml.

Examples:
  schemedash config set source.base_url https://stats.example.org
  schemedash config set concurrency 4
  schemedash config set --global color_seed 7`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every set configuration value, annotated with whether it comes from
the local file (.schemedash.yaml) or the global config. Local values
override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/schemedash/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/schemedash/config.yaml)")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// starterConfig is what config init writes.
const starterConfig = `# schemedash configuration.
source:
  # Fetch datasets from a server...
  # base_url: https://stats.example.org
  # ...or read them from a directory.
  # dir: ./data
  path_pattern: data/{id}-distribution.json
  timeout: 10s
  # cache_ttl: 5m

# concurrency: 4
# fallback_file: fallback.toml
# capacity: 1000000
district: all
output_format: html
# color_seed: 42
`

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagOverrides{})
	if err != nil {
		return err
	}
	return config.Write(cmd.OutOrStdout(), cfg)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.FileName
	if _, err := cmdFS.Stat(path); err == nil && !configForce {
		return exitError(ExitInvalidArgs, "schemedash: %s already exists (use --force to overwrite)", path)
	}
	if err := cmdFS.WriteFile(path, []byte(starterConfig), 0o600); err != nil {
		return fmt.Errorf("schemedash: cannot write %s (%v)", path, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return exitError(ExitInvalidArgs, "schemedash: %v", err)
	}

	load := func() (*config.Config, error) { return config.LoadLayered(".") }
	if configGlobal {
		load = config.LoadGlobal
	}
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("schemedash: cannot read config (%v)", err)
	}

	val, err := config.GetValue(cfg, keyPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "schemedash: %v", err)
	}
	return printValue(cmd.OutOrStdout(), val)
}

// configTarget is the file config set writes to.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	return filepath.Join(".", config.FileName)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]
	target := configTarget()

	data, err := config.LoadRaw(target)
	if err != nil {
		return fmt.Errorf("schemedash: cannot read %s (%v)", target, err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return exitError(ExitInvalidArgs, "schemedash: %v", err)
	}

	// The edited document must still load and validate before it replaces
	// the file.
	encoded, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("schemedash: encode config (%v)", err)
	}
	cfg, err := config.Parse(encoded)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "schemedash: %v", err)
	}

	if err := config.WriteFile(target, data); err != nil {
		return fmt.Errorf("schemedash: cannot write %s (%v)", target, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	global, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("schemedash: cannot read global config (%v)", err)
	}
	local, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("schemedash: cannot read %s (%v)", config.FileName, err)
	}

	origin := make(map[string]string)
	values := make(map[string]any)
	for _, layer := range []struct {
		name string
		cfg  *config.Config
	}{{"global", global}, {"local", local}} {
		flat, err := config.Flatten(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range flat {
			values[k] = v
			origin[k] = layer.name
		}
	}

	if len(values) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'schemedash config init' to create a config, or 'schemedash config set <key> <value>' to set values.")
		return nil
	}

	tbl := report.NewTable(
		report.Column{Header: "Key"},
		report.Column{Header: "Value"},
		report.Column{Header: "From", Color: colorLayer},
	)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		tbl.AddRow(k, fmt.Sprint(values[k]), origin[k])
	}
	return tbl.Render(w)
}

func colorLayer(v string) string {
	if v == "global" {
		return color.CyanString(v)
	}
	return color.GreenString(v)
}

// printValue writes scalars as plain text and sections as YAML.
func printValue(w io.Writer, val any) error {
	if m, ok := val.(map[string]any); ok {
		data, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	_, err := fmt.Fprintln(w, val)
	return err
}
