package checks

import (
	"context"

	"github.com/YogeshAbnave/sre-project/internal/awsprobe"
)

// CredentialProber is the slice of awsprobe.Client the credential check
// needs, kept narrow so tests can substitute a fake.
type CredentialProber interface {
	ValidateCredentials(ctx context.Context) *awsprobe.CredentialReport
}

// AWSCredentials verifies the active AWS credentials can authenticate
// and reports the caller account and principal. Limited storage access
// is a warning, not a failure.
func AWSCredentials(ctx context.Context, prober CredentialProber, p *Printer) bool {
	p.Info("Checking AWS Credentials")

	if prober == nil {
		p.Error("AWS client could not be constructed")
		return false
	}

	report := prober.ValidateCredentials(ctx)
	if !report.Valid {
		p.Error("AWS credentials not configured or invalid")
		p.Detail("Solutions:")
		for i, s := range report.Suggestions {
			p.Detail("%d. %s", i+1, s)
		}
		return false
	}

	p.Success("AWS credentials valid - Account: %s", report.AccountID)
	p.Info("User/Role: %s", report.PrincipalARN)

	if report.ServicesAccessible["s3"] {
		p.Success("S3 access - OK")
	} else {
		p.Warning("S3 access - Limited permissions")
	}

	return true
}
