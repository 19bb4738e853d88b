package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YogeshAbnave/sre-project/internal/checks"
	"github.com/YogeshAbnave/sre-project/internal/setupcfg"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gateway setup configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create template config.yaml and .env.example files",
	Long: `Writes a commented config.yaml template with placeholder values and
an example environment file. Existing files are never overwritten.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		mgr := setupcfg.NewManager(viper.GetString("config_dir"), logger)
		if err := mgr.CreateTemplates(); err != nil {
			return err
		}
		fmt.Printf("Templates written to %s\n", viper.GetString("config_dir"))
		fmt.Println("Edit config.yaml and replace the placeholder values.")
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single configuration parameter",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		mgr := setupcfg.NewManager(viper.GetString("config_dir"), logger)
		if err := mgr.UpdateParameter(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", args[0])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration with its validation result",
	RunE: func(_ *cobra.Command, _ []string) error {
		mgr := setupcfg.NewManager(viper.GetString("config_dir"), logger)
		config, err := mgr.Load()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(config))
		for k := range config {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %v\n", k, config[k])
		}

		printer := checks.NewPrinter(os.Stdout)
		printer.Blank()
		result := setupcfg.Validate(config)
		if result.IsValid {
			printer.Success("configuration is valid")
			return nil
		}
		for _, ve := range result.Errors {
			printer.Error("%s: %s", ve.Field, ve.Message)
			if ve.Suggestion != "" {
				printer.Detail("%s", ve.Suggestion)
			}
		}
		for _, w := range result.Warnings {
			printer.Warning("%s", w)
		}
		return fmt.Errorf("configuration has %d validation error(s)", len(result.Errors))
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configSetCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
