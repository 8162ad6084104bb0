package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/packetguard/internal/config"
	"github.com/smykla-skalski/packetguard/internal/schema"
	pkgconfig "github.com/smykla-skalski/packetguard/pkg/config"
)

var (
	configForce   bool
	schemaCompact bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the diagnostics configuration",
	Long: `Manage ~/.packetguard/config.toml. The configuration only controls the
diagnostics log; it never changes what the guard allows or denies.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Replace an existing file")
	configSchemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Print without indentation")

	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return errors.Wrap(err, "failed to create config loader")
	}

	cfg, err := loader.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := internalconfig.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "# file: %s (%s)\n", loader.GlobalConfigPath(), presence(loader.GlobalConfigPath()))

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "write config")
	}

	writeLogStatus(out, cfg.GetLog())

	return nil
}

func presence(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "not found"
	}

	return "found"
}

//nolint:errcheck // report output is best effort
func writeLogStatus(w io.Writer, logCfg *pkgconfig.LogConfig) {
	if !logCfg.IsEnabled() {
		fmt.Fprintln(w, "# log: disabled")

		return
	}

	info, err := os.Stat(logCfg.File)
	if err != nil {
		fmt.Fprintf(w, "# log: %s (not created yet)\n", logCfg.File)

		return
	}

	fmt.Fprintf(w, "# log: %s (%s)\n", logCfg.File, humanize.Bytes(uint64(max(info.Size(), 0))))
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "failed to get home directory")
	}

	path, err := internalconfig.NewWriter(homeDir).WriteGlobal(internalconfig.DefaultConfig(), configForce)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	return schema.Write(cmd.OutOrStdout(), schemaCompact)
}
