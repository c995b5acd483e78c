package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NavyStack/node-bb-docker/internal/cli/output"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved configuration",
	Long: `Display the bootstrap configuration as resolved from the environment
and built-in defaults.

Examples:
  # Show resolved settings as a table
  nodebb-init config show

  # Show as YAML or JSON
  nodebb-init config show --output yaml
  nodebb-init config show --output json`,
	RunE: runConfigShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "table", "Output format (table|yaml|json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(showOutput)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, cfg)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, cfg)
	default:
		output.PrintKeyValueTable(os.Stdout, []string{"SETTING", "VALUE"}, settingsRows(cfg))
		return nil
	}
}

// settingsRows flattens the configuration into display rows, including the
// derived paths the pipeline actually operates on.
func settingsRows(cfg *config.Config) [][]string {
	remap := func(v int, ok bool) string {
		if !ok {
			return "(unset)"
		}
		return strconv.Itoa(v)
	}

	return [][]string{
		{"CONFIG_DIR", cfg.ConfigDir},
		{"NODEBB_INIT_VERB", cfg.InitVerb},
		{"START_BUILD", strconv.FormatBool(cfg.StartBuild)},
		{"SETUP", cfg.Setup},
		{"PACKAGE_MANAGER", cfg.PackageManager.String()},
		{"OVERRIDE_UPDATE_LOCK", strconv.FormatBool(cfg.OverrideUpdateLock)},
		{"CONTAINER_USER", cfg.ContainerUser},
		{"CONTAINER_USER_ID", strconv.Itoa(cfg.ContainerUserID)},
		{"CONTAINER_GRP_ID", strconv.Itoa(cfg.ContainerGroupID)},
		{"UID", remap(cfg.RemapUID, cfg.HasRemapUID())},
		{"GID", remap(cfg.RemapGID, cfg.HasRemapGID())},
		{"LOG_LEVEL", cfg.LogLevel},
		{"LOG_FORMAT", cfg.LogFormat},
		{"config file", cfg.ConfigFile()},
		{"home dir", cfg.HomeDir()},
		{"app dir", cfg.AppDir},
		{"log dir", cfg.LogDir()},
		{"lock file", fmt.Sprintf("%s (%s)", cfg.PackageManager.Lockfile(), cfg.PackageManager)},
	}
}
