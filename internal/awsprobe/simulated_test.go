package awsprobe

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	bctypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// Simulated service clients. Each returns canned responses or a
// configured error so probes can be tested without AWS credentials.

type simulatedIdentity struct {
	account string
	arn     string
	err     error
}

func (s *simulatedIdentity) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: aws.String(s.account),
		Arn:     aws.String(s.arn),
	}, nil
}

type simulatedStorage struct {
	err error
}

func (s *simulatedStorage) ListBuckets(_ context.Context, _ *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s3.ListBucketsOutput{}, nil
}

type simulatedCognito struct {
	err error
}

func (s *simulatedCognito) ListUserPools(_ context.Context, _ *cognitoidentityprovider.ListUserPoolsInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolsOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &cognitoidentityprovider.ListUserPoolsOutput{}, nil
}

type simulatedLogs struct {
	err error
}

func (s *simulatedLogs) DescribeLogGroups(_ context.Context, _ *cloudwatchlogs.DescribeLogGroupsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &cloudwatchlogs.DescribeLogGroupsOutput{}, nil
}

// simulatedGateway serves ListGateways from an in-memory page list so
// pagination can be exercised.
type simulatedGateway struct {
	pages [][]bctypes.GatewaySummary
	err   error
	calls int
}

func (s *simulatedGateway) ListGateways(_ context.Context, in *bedrockagentcorecontrol.ListGatewaysInput, _ ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewaysOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	page := s.calls
	s.calls++
	out := &bedrockagentcorecontrol.ListGatewaysOutput{Items: s.pages[page]}
	if page < len(s.pages)-1 {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

// newSimulatedClient wires a Client with simulated service clients. No
// AWS credentials are required.
func newSimulatedClient() *Client {
	return &Client{
		identity: &simulatedIdentity{account: "123456789012", arn: "arn:aws:iam::123456789012:user/test"},
		storage:  &simulatedStorage{},
		cognito:  &simulatedCognito{},
		logs:     &simulatedLogs{},
		gateway:  &simulatedGateway{pages: [][]bctypes.GatewaySummary{{}}},
		region:   "us-east-1",
		log:      zap.NewNop(),
	}
}

func accessDenied() error {
	return &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not allowed"}
}

func TestValidateCredentialsSuccess(t *testing.T) {
	c := newSimulatedClient()
	report := c.ValidateCredentials(context.Background())

	if !report.Valid || !report.HasCredentials || !report.CanAuthenticate {
		t.Fatalf("expected valid credentials, got %+v", report)
	}
	if report.AccountID != "123456789012" {
		t.Errorf("account = %q", report.AccountID)
	}
	if report.PrincipalARN != "arn:aws:iam::123456789012:user/test" {
		t.Errorf("principal = %q", report.PrincipalARN)
	}
	if !report.ServicesAccessible["s3"] {
		t.Error("s3 should be accessible")
	}
	if len(report.Errors) != 0 {
		t.Errorf("unexpected errors: %v", report.Errors)
	}
}

func TestValidateCredentialsDenied(t *testing.T) {
	c := newSimulatedClient()
	c.identity = &simulatedIdentity{err: accessDenied()}

	report := c.ValidateCredentials(context.Background())
	if report.Valid || report.CanAuthenticate {
		t.Fatalf("expected invalid credentials, got %+v", report)
	}
	if len(report.Errors) == 0 {
		t.Fatal("expected at least one error")
	}
	if len(report.Suggestions) < len(credentialSuggestions) {
		t.Errorf("suggestions = %v, want the standard remediation list", report.Suggestions)
	}
}

func TestValidateCredentialsLimitedS3(t *testing.T) {
	c := newSimulatedClient()
	c.storage = &simulatedStorage{err: accessDenied()}

	report := c.ValidateCredentials(context.Background())
	if !report.Valid {
		t.Fatal("limited S3 access must not invalidate credentials")
	}
	if report.ServicesAccessible["s3"] {
		t.Error("s3 should be marked inaccessible")
	}
	if len(report.Suggestions) == 0 {
		t.Error("expected an S3 permission suggestion")
	}
}

func TestTestConnectivityAllReachable(t *testing.T) {
	c := newSimulatedClient()
	services := []string{ServiceSTS, ServiceS3, ServiceCognito, ServiceLogs}

	results := c.TestConnectivity(context.Background(), services)
	if len(results) != len(services) {
		t.Fatalf("results = %d, want %d", len(results), len(services))
	}
	for _, r := range results {
		if !r.Accessible {
			t.Errorf("%s should be accessible: %s", r.Service, r.ErrorMessage)
		}
		if r.Endpoint == "" {
			t.Errorf("%s missing endpoint", r.Service)
		}
	}
}

func TestTestConnectivityFailureRecorded(t *testing.T) {
	c := newSimulatedClient()
	c.cognito = &simulatedCognito{err: accessDenied()}

	results := c.TestConnectivity(context.Background(), []string{ServiceCognito})
	if len(results) != 1 {
		t.Fatalf("results = %d", len(results))
	}
	r := results[0]
	if r.Accessible {
		t.Error("cognito should be inaccessible")
	}
	if r.ErrorMessage == "" {
		t.Error("failure should carry a classified error message")
	}
}

func TestTestConnectivityUnknownService(t *testing.T) {
	c := newSimulatedClient()
	results := c.TestConnectivity(context.Background(), []string{"bogus"})
	if len(results) != 1 || results[0].Accessible {
		t.Fatalf("unknown service should be reported inaccessible: %+v", results)
	}
}

func TestGatewayStatusFound(t *testing.T) {
	c := newSimulatedClient()
	c.gateway = &simulatedGateway{pages: [][]bctypes.GatewaySummary{{
		{Name: aws.String("OtherGateway"), Status: bctypes.GatewayStatusCreating},
		{Name: aws.String("MyAgentCoreGateway"), Status: bctypes.GatewayStatusReady},
	}}}

	status, err := c.GatewayStatus(context.Background(), "MyAgentCoreGateway")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "READY" {
		t.Errorf("status = %q, want READY", status)
	}
}

func TestGatewayStatusNotFound(t *testing.T) {
	c := newSimulatedClient()
	status, err := c.GatewayStatus(context.Background(), "MissingGateway")
	if err != nil {
		t.Fatalf("missing gateway must not be an error: %v", err)
	}
	if status != GatewayStatusNotFound {
		t.Errorf("status = %q, want %q", status, GatewayStatusNotFound)
	}
}

func TestGatewayStatusPaginates(t *testing.T) {
	c := newSimulatedClient()
	gw := &simulatedGateway{pages: [][]bctypes.GatewaySummary{
		{{Name: aws.String("First"), Status: bctypes.GatewayStatusReady}},
		{{Name: aws.String("Second"), Status: bctypes.GatewayStatusReady}},
	}}
	c.gateway = gw

	status, err := c.GatewayStatus(context.Background(), "Second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "READY" {
		t.Errorf("status = %q, want READY", status)
	}
	if gw.calls != 2 {
		t.Errorf("calls = %d, want both pages fetched", gw.calls)
	}
}

func TestGatewayStatusErrorPropagates(t *testing.T) {
	c := newSimulatedClient()
	c.gateway = &simulatedGateway{err: accessDenied()}

	if _, err := c.GatewayStatus(context.Background(), "MyAgentCoreGateway"); err == nil {
		t.Fatal("expected error from gateway listing")
	}
}
