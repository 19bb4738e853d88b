package awsprobe

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"
)

// CredentialReport is the outcome of the AWS credential probe.
type CredentialReport struct {
	Valid           bool
	HasCredentials  bool
	CanAuthenticate bool
	AccountID       string
	PrincipalARN    string
	// ServicesAccessible records secondary per-service access probes.
	ServicesAccessible map[string]bool
	Errors             []string
	Suggestions        []string
}

// credentialSuggestions are offered when the identity call fails.
var credentialSuggestions = []string{
	"Run: aws configure",
	"Set environment variables: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY",
	"Attach IAM role to EC2 instance (recommended)",
}

// ValidateCredentials checks the active AWS credentials by calling STS
// GetCallerIdentity, then probes S3 listing as a soft secondary check.
// Limited S3 permissions degrade the report, not the validity.
func (c *Client) ValidateCredentials(ctx context.Context) *CredentialReport {
	report := &CredentialReport{ServicesAccessible: make(map[string]bool)}

	cctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	identity, err := c.identity.GetCallerIdentity(cctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		category, hint := Classify(err)
		report.Errors = append(report.Errors,
			fmt.Sprintf("AWS credentials not configured or invalid (%s): %v", category, err))
		report.Suggestions = append(report.Suggestions, credentialSuggestions...)
		if hint != "" {
			report.Suggestions = append(report.Suggestions, hint)
		}
		c.log.Warn("credential probe failed", zap.String("category", category), zap.Error(err))
		return report
	}

	report.HasCredentials = true
	report.CanAuthenticate = true
	report.Valid = true
	report.AccountID = aws.ToString(identity.Account)
	report.PrincipalARN = aws.ToString(identity.Arn)
	c.log.Info("credentials valid",
		zap.String("account", report.AccountID),
		zap.String("principal", report.PrincipalARN))

	// Soft check: list buckets. Failure means limited permissions, not
	// invalid credentials.
	sctx, scancel := context.WithTimeout(ctx, probeTimeout)
	defer scancel()
	if _, err := c.storage.ListBuckets(sctx, &s3.ListBucketsInput{}); err != nil {
		report.ServicesAccessible["s3"] = false
		report.Suggestions = append(report.Suggestions,
			"S3 access is limited; grant s3:ListAllMyBuckets if schema upload is needed")
		c.log.Warn("s3 probe failed", zap.Error(err))
	} else {
		report.ServicesAccessible["s3"] = true
	}

	return report
}
