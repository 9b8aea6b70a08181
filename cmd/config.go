package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rnwolfe/sift/internal/config"
	"github.com/rnwolfe/sift/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.GetPaths().ConfigFile)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Supported keys:
  color             Colored output (true/false)
  picker.height     Visible picker rows
  picker.prompt     Picker prompt string
  search.heteronym  Match every reading of polyphonic characters (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configKeys maps user-facing key names to getter/setter pairs.
var configKeys = map[string]struct {
	get func(*config.Config) string
	set func(*config.Config, string) error
}{
	"color": {
		get: func(cfg *config.Config) string {
			return fmt.Sprintf("%t", cfg.ColorEnabled())
		},
		set: func(cfg *config.Config, val string) error {
			b, err := parseBool(val)
			if err != nil {
				return fmt.Errorf("invalid value %q for color (use true/false)", val)
			}
			cfg.Color = config.BoolPtr(b)
			return nil
		},
	},
	"picker.height": {
		get: func(cfg *config.Config) string {
			return strconv.Itoa(cfg.Picker.Height)
		},
		set: func(cfg *config.Config, val string) error {
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid value %q for picker.height (use a positive number)", val)
			}
			cfg.Picker.Height = n
			return nil
		},
	},
	"picker.prompt": {
		get: func(cfg *config.Config) string { return cfg.Picker.Prompt },
		set: func(cfg *config.Config, val string) error {
			if val == "" {
				return fmt.Errorf("picker.prompt must not be empty")
			}
			cfg.Picker.Prompt = val
			return nil
		},
	},
	"search.heteronym": {
		get: func(cfg *config.Config) string {
			return fmt.Sprintf("%t", cfg.Search.HeteronymEnabled())
		},
		set: func(cfg *config.Config, val string) error {
			b, err := parseBool(val)
			if err != nil {
				return fmt.Errorf("invalid value %q for search.heteronym (use true/false)", val)
			}
			cfg.Search.Heteronym = config.BoolPtr(b)
			return nil
		},
	},
}

func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", val)
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (run %s to see available keys)",
			key, ui.Accent.Render("sift config set --help"))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := entry.set(cfg, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.get(cfg))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	paths := config.GetPaths()

	ui.Header("Configuration")
	fmt.Println()
	ui.Kv("Color", fmt.Sprintf("%t", cfg.ColorEnabled()))
	ui.Kv("Picker", fmt.Sprintf("height %d, prompt %q", cfg.Picker.Height, cfg.Picker.Prompt))
	ui.Kv("Heteronym", fmt.Sprintf("%t", cfg.Search.HeteronymEnabled()))
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	fmt.Println()
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()

	return nil
}
