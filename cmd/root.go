// Package cmd wires the sre-gateway command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir string
	region    string
	verbose   bool

	// logger is initialized before any subcommand runs.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sre-gateway",
	Short: "Setup and validation tooling for the SRE agent gateway",
	Long: `sre-gateway configures and validates the AWS-backed gateway used by
the SRE agent: credential providers, Cognito, S3, and the managed
AgentCore gateway service.

It checks prerequisites, AWS credentials, configuration files, TLS
certificates, and port availability, and generates a remediation script
for anything it finds missing.`,
	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
}

// Execute runs the root command. A non-nil error has already been
// printed by cobra; the caller decides the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing config.yaml and .env")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "us-east-1", "AWS region")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("SRE_GATEWAY")
	viper.AutomaticEnv()
}

// initLogger builds the zap logger used by all subcommands. Logs go to
// stderr so the styled status output on stdout stays clean.
func initLogger(_ *cobra.Command, _ []string) error {
	level := zap.WarnLevel
	if viper.GetBool("verbose") {
		level = zap.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = log
	return nil
}
