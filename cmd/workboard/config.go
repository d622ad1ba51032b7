package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/workboard/internal/config"
)

// configKeysHelp lists the settable keys; shared by the config subcommands.
const configKeysHelp = `Keys:
  title                   board title (default "Workboard")
  output_format           html, json, markdown or table (default html)
  group_by                workspace, stage, owner or none (default workspace)
  list_limit              items shown in collapsed owner/stage lists (default 5)
  filter.query            search text the board opens with
  filter.owner            owner the board opens filtered to
  filter.stage            stage token the board opens filtered to
  filter.hide_unassigned  hide rows without an owner
  sort                    list of column clicks; edit the file directly`

// configGlobal selects the global config file instead of the repo one.
var configGlobal bool

// configShowDefaults fills unset keys with their defaults in config show.
var configShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify board defaults",
	Long: `View and modify the defaults render and the MCP render_board tool use.

Settings come from .workboard.yaml in the current directory, layered over
$XDG_CONFIG_HOME/workboard/config.yaml (default ~/.config/workboard).
Command line flags and tool inputs override both.

` + configKeysHelp,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Long: `Print the effective value of a setting. A section key such as filter
prints every field set under it as YAML.

Examples:
  workboard config get group_by
  workboard config get filter
  workboard config get --global title`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change a setting in .workboard.yaml, or in the global file with --global.
The value is parsed by the key's type and the whole file is validated
before it is written. Comments in the file are not preserved.

Examples:
  workboard config set group_by stage
  workboard config set filter.hide_unassigned true
  workboard config set --global list_limit 10

` + configKeysHelp,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with the file it comes from",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the repo settings layered over the global ones as a YAML document
that can be saved as .workboard.yaml. With --defaults, unset keys show the
value render would use.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "read the global config only")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to the global config")
	configShowCmd.Flags().BoolVar(&configShowDefaults, "defaults", false, "fill unset keys with their defaults")

	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd, configShowCmd)
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	configShowDefaults = false
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd, configShowCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func loadConfigScope() (*config.Config, error) {
	if configGlobal {
		return config.LoadGlobal()
	}
	return config.LoadMerged(".")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigScope()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadMerged(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if configShowDefaults {
		s := config.Settings{
			Title:        cfg.Title,
			OutputFormat: cfg.OutputFormat,
			GroupBy:      cfg.GroupBy,
			ListLimit:    cfg.ListLimit,
		}.WithDefaults()
		cfg.Title, cfg.OutputFormat, cfg.GroupBy, cfg.ListLimit = s.Title, s.OutputFormat, s.GroupBy, s.ListLimit
	}
	return config.Write(cmd.OutOrStdout(), cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]

	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	globalMap, err := configToFlatMap(globalCfg)
	if err != nil {
		return err
	}
	repoMap, err := configToFlatMap(repoCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range repoMap {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'workboard config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source, globalColor, repoColor))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps and slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// configToFlatMap converts a Config to a flat dot-notation map, omitting zero values.
func configToFlatMap(cfg *config.Config) (map[string]any, error) {
	m, err := config.ToMap(cfg)
	if err != nil {
		return nil, err
	}
	return config.FlattenMap(m, ""), nil
}

// formatSource returns a colorized source annotation.
func formatSource(source string, globalColor, repoColor *color.Color) string {
	switch source {
	case "global":
		return globalColor.Sprint("(global)")
	case "repo":
		return repoColor.Sprint("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
