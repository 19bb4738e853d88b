package awsprobe

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"
)

// Service names accepted by TestConnectivity.
const (
	ServiceSTS     = "sts"
	ServiceS3      = "s3"
	ServiceCognito = "cognito-idp"
	ServiceLogs    = "logs"
)

// ConnectivityResult is the outcome of probing one AWS service.
type ConnectivityResult struct {
	Service      string
	Accessible   bool
	ResponseTime time.Duration
	ErrorMessage string
	Endpoint     string
}

// TestConnectivity probes each named service with a cheap read-only
// call and records reachability and latency. Unknown service names are
// reported as inaccessible rather than skipped.
func (c *Client) TestConnectivity(ctx context.Context, services []string) []ConnectivityResult {
	results := make([]ConnectivityResult, 0, len(services))
	for _, service := range services {
		results = append(results, c.probeService(ctx, service))
	}
	return results
}

// probeService issues the service-specific probe call.
func (c *Client) probeService(ctx context.Context, service string) ConnectivityResult {
	result := ConnectivityResult{
		Service:  service,
		Endpoint: fmt.Sprintf("%s.%s.amazonaws.com", service, c.region),
	}

	cctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	var err error
	switch service {
	case ServiceSTS:
		_, err = c.identity.GetCallerIdentity(cctx, &sts.GetCallerIdentityInput{})
	case ServiceS3:
		_, err = c.storage.ListBuckets(cctx, &s3.ListBucketsInput{})
	case ServiceCognito:
		_, err = c.cognito.ListUserPools(cctx, &cognitoidentityprovider.ListUserPoolsInput{
			MaxResults: aws.Int32(1),
		})
	case ServiceLogs:
		_, err = c.logs.DescribeLogGroups(cctx, &cloudwatchlogs.DescribeLogGroupsInput{
			Limit: aws.Int32(1),
		})
	default:
		err = fmt.Errorf("unknown service %q", service)
	}
	result.ResponseTime = time.Since(start)

	if err != nil {
		category, _ := Classify(err)
		result.ErrorMessage = fmt.Sprintf("%s: %v", category, err)
		c.log.Warn("connectivity probe failed",
			zap.String("service", service), zap.Error(err))
		return result
	}

	result.Accessible = true
	return result
}
