package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YogeshAbnave/sre-project/internal/awsprobe"
	"github.com/YogeshAbnave/sre-project/internal/checks"
	"github.com/YogeshAbnave/sre-project/internal/setupcfg"
	"github.com/YogeshAbnave/sre-project/internal/setupstate"
)

// verifyServices are the AWS services probed for the verification
// report.
var verifyServices = []string{
	awsprobe.ServiceSTS,
	awsprobe.ServiceS3,
	awsprobe.ServiceCognito,
	awsprobe.ServiceLogs,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Build a post-setup verification report",
	Long: `Probes the AWS services the gateway depends on, looks up the
configured gateway by name, and prints a verification report with
recommendations for anything unreachable.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	mgr := setupcfg.NewManager(viper.GetString("config_dir"), logger)
	gwCfg, err := mgr.GatewayConfig()
	if err != nil {
		return err
	}

	client, err := awsprobe.NewClient(ctx, viper.GetString("region"), logger)
	if err != nil {
		return fmt.Errorf("initialize AWS client: %w", err)
	}

	report := setupstate.NewVerificationReport()
	reportComponents(mgr, report)

	for _, result := range client.TestConnectivity(ctx, verifyServices) {
		report.RecordConnectivity(result.Service, result.Accessible)
	}

	status, err := client.GatewayStatus(ctx, gwCfg.Name)
	if err != nil {
		report.GatewayStatus = "error"
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Gateway lookup failed: %v", err))
	} else {
		report.GatewayStatus = status
		if status == awsprobe.GatewayStatusNotFound {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Gateway %q does not exist yet; run the production setup", gwCfg.Name))
		}
	}

	report.SetupDuration = time.Since(start)

	printer := checks.NewPrinter(os.Stdout)
	printer.Line("%s", report.Summary())
	if len(report.Recommendations) > 0 {
		return fmt.Errorf("verification found %d issue(s)", len(report.Recommendations))
	}
	return nil
}

// reportComponents records which configuration groups are filled in.
func reportComponents(mgr *setupcfg.Manager, report *setupstate.VerificationReport) {
	config, err := mgr.Load()
	if err != nil {
		return
	}
	result := setupcfg.Validate(config)
	if result.IsValid {
		report.AddComponent("configuration")
	}
	if cognito, err := mgr.CognitoConfig(); err == nil && cognito.UserPoolID != "" {
		report.AddComponent("cognito")
	}
	if s3cfg, err := mgr.S3Config(); err == nil && s3cfg.Bucket != "" {
		report.AddComponent("s3")
	}
	if cred, err := mgr.CredentialConfig(""); err == nil && cred.ProviderName != "" {
		report.AddComponent("credential_provider")
	}
}
