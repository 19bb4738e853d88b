package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/YogeshAbnave/sre-project/internal/awsprobe"
	"github.com/YogeshAbnave/sre-project/internal/checks"
	"github.com/YogeshAbnave/sre-project/internal/setupcfg"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the environment and configuration for the gateway setup",
	Long: `Runs the fixed sequence of setup checks: prerequisites, AWS
credentials, configuration files, TLS certificates, and port
availability. On failure a remediation script is generated.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	printer := checks.NewPrinter(os.Stdout)
	printer.Line("🔍 SRE Agent Setup Validation")
	printer.Line("%s", strings.Repeat("=", 50))
	printer.Blank()

	mgr := setupcfg.NewManager(viper.GetString("config_dir"), logger)

	// A client construction failure (no credential chain at all) is
	// reported by the credential check itself, not fatal here.
	var prober checks.CredentialProber
	if client, err := awsprobe.NewClient(ctx, viper.GetString("region"), logger); err != nil {
		logger.Warn("AWS client unavailable", zap.Error(err))
	} else {
		prober = client
	}

	sequence := []checks.Check{
		{Name: "Prerequisites", Run: func(ctx context.Context) bool {
			return checks.Prerequisites(ctx, printer)
		}},
		{Name: "AWS Credentials", Run: func(ctx context.Context) bool {
			return checks.AWSCredentials(ctx, prober, printer)
		}},
		{Name: "Configuration", Run: func(_ context.Context) bool {
			return checks.Configuration(mgr, printer)
		}},
		{Name: "TLS Certificates", Run: func(_ context.Context) bool {
			return checks.TLSCertificates(checks.DefaultCertPaths, printer)
		}},
		{Name: "Port Availability", Run: func(ctx context.Context) bool {
			return checks.Ports(ctx, checks.RequiredPorts, printer)
		}},
	}

	summary := checks.RunAll(ctx, sequence, printer)
	checks.PrintSummary(summary, printer)

	if summary.AllPassed() {
		printer.Success("🎉 All checks passed! Ready to run production setup.")
		return nil
	}

	scriptPath := filepath.Join(viper.GetString("config_dir"), checks.FixScriptName)
	if err := checks.WriteFixScript(scriptPath); err != nil {
		return err
	}
	printer.Success("Generated %s script", checks.FixScriptName)
	printer.Detail("To fix issues:")
	printer.Detail("1. Run: %s", scriptPath)
	printer.Detail("2. Edit configuration files as needed")
	printer.Detail("3. Re-run: sre-gateway validate")

	return fmt.Errorf("%d of %d checks failed", len(summary.Results)-summary.Passed(), len(summary.Results))
}
