package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/tessro/gplay/internal/config"
	gerrors "github.com/tessro/gplay/internal/errors"
)

const configHeader = "# gplay configuration\n\n"

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Commands for viewing and editing gplay configuration.`,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

The value is checked before the file is written, so set also repairs a
config file that fails validation. Flags must come before the key.

Supported keys:
  station.num_entries  Default number of tracks per request (0-78)
  station.max_results  Default page size, 0 for the server default
  output.format        Output format (normal/minimal/table/json)
  log.level            Log level (debug/info/warn/error)
  log.file             Log file path, empty for stderr

Examples:
  gplay config set station.num_entries 40
  gplay config set output.format json
  gplay config set -- station.max_results 0`,
		Args: cobra.ExactArgs(2),
		Annotations: map[string]string{
			skipConfigValidate: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(cmd, args[0], args[1])
		},
	}
	// Values such as -1 are arguments, not shorthand flags.
	setCmd.Flags().SetInterspersed(false)

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current configuration",
			Long:  `Display the current configuration values, including defaults and environment overrides.`,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigShow(cmd)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the configuration file path",
			Args:  cobra.NoArgs,
			Annotations: map[string]string{
				skipConfigValidate: "true",
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigPath(cmd)
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit configuration file",
			Long:  `Open the configuration file in your default editor.`,
			Args:  cobra.NoArgs,
			Annotations: map[string]string{
				skipConfigValidate: "true",
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigEdit()
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Initialize configuration",
			Long:  `Create a new configuration file with default values.`,
			Args:  cobra.NoArgs,
			Annotations: map[string]string{
				skipConfigLoad: "true",
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigInit(cmd)
			},
		},
		setCmd,
	)

	return configCmd
}

func (a *app) runConfigShow(cmd *cobra.Command) error {
	if a.outputMode() == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), a.cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.Indent = "  "
	return encoder.Encode(a.cfg)
}

func (a *app) runConfigPath(cmd *cobra.Command) error {
	path := a.configPath()
	_, err := os.Stat(path)
	exists := err == nil

	if a.outputMode() == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"path":   path,
			"exists": exists,
		})
	}

	if exists {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (not created)\n", path)
	}
	return nil
}

func (a *app) runConfigEdit() error {
	configPath := a.configPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", gerrors.ErrConfigNotFound, configPath)
	}

	// Find editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return gerrors.WithSuggestion(fmt.Errorf("no editor found"), "Set the EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func (a *app) runConfigInit(cmd *cobra.Command) error {
	configPath := a.configPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := writeConfigFile(configPath, config.Default()); err != nil {
		return err
	}
	a.logger.Debug("created config file", "path", configPath)

	if a.outputMode() == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"status": "created",
			"path":   configPath,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", configPath)
	return nil
}

func (a *app) runConfigSet(cmd *cobra.Command, key, value string) error {
	configPath := a.configPath()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", gerrors.ErrConfigNotFound, configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Parse the key (e.g., "station.num_entries" -> ["station", "num_entries"])
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return gerrors.InvalidArgument("key", "use 'section.key' (e.g. station.num_entries)")
	}
	section, field := parts[0], parts[1]

	var typedValue any
	switch key {
	case "station.num_entries", "station.max_results":
		i, err := strconv.Atoi(value)
		if err != nil {
			return gerrors.InvalidArgument(key, "value must be an integer")
		}
		typedValue = i
	case "output.format", "log.level", "log.file":
		typedValue = value
	default:
		return gerrors.InvalidArgument("key", fmt.Sprintf("unsupported key %q", key))
	}

	var rawConfig map[string]any
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if rawConfig == nil {
		rawConfig = make(map[string]any)
	}

	sectionMap, ok := rawConfig[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		rawConfig[section] = sectionMap
	}
	sectionMap[field] = typedValue

	// Reject values the loader would refuse later.
	if err := checkRawConfig(rawConfig); err != nil {
		return err
	}

	if err := writeConfigFile(configPath, rawConfig); err != nil {
		return err
	}

	if a.outputMode() == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	if path := config.FindConfigFile(); path != "" {
		return path
	}
	return config.DefaultPath()
}

func checkRawConfig(raw map[string]any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	var cfg config.Config
	if _, err := toml.Decode(buf.String(), &cfg); err != nil {
		return fmt.Errorf("%w: %w", gerrors.ErrInvalidConfig, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", gerrors.ErrInvalidConfig, err)
	}
	return nil
}

func writeConfigFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	encoder := toml.NewEncoder(&buf)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
