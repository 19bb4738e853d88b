// Package awsprobe performs read-only probes against the AWS services
// the gateway setup depends on: caller identity, storage access,
// identity-provider and monitoring connectivity, and the status of the
// managed gateway itself.
package awsprobe

import (
	"context"
	"fmt"
	"time"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"
)

// probeTimeout bounds every individual service call.
const probeTimeout = 30 * time.Second

// listPageSize is the MaxResults value used for list probes.
const listPageSize = 100

// Service client interfaces, narrowed to the calls the probes make so
// tests can substitute simulated implementations.
type identityAPI interface {
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, opts ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type storageAPI interface {
	ListBuckets(ctx context.Context, in *s3.ListBucketsInput, opts ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

type cognitoAPI interface {
	ListUserPools(ctx context.Context, in *cognitoidentityprovider.ListUserPoolsInput, opts ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolsOutput, error)
}

type logsAPI interface {
	DescribeLogGroups(ctx context.Context, in *cloudwatchlogs.DescribeLogGroupsInput, opts ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
}

type gatewayAPI interface {
	ListGateways(ctx context.Context, in *bedrockagentcorecontrol.ListGatewaysInput, opts ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewaysOutput, error)
}

// Client bundles the probe clients for one region.
type Client struct {
	identity identityAPI
	storage  storageAPI
	cognito  cognitoAPI
	logs     logsAPI
	gateway  gatewayAPI
	region   string
	log      *zap.Logger
}

// NewClient builds a Client from the default AWS credential chain.
func NewClient(ctx context.Context, region string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Client{
		identity: sts.NewFromConfig(cfg),
		storage:  s3.NewFromConfig(cfg),
		cognito:  cognitoidentityprovider.NewFromConfig(cfg),
		logs:     cloudwatchlogs.NewFromConfig(cfg),
		gateway:  bedrockagentcorecontrol.NewFromConfig(cfg),
		region:   region,
		log:      log,
	}, nil
}

// Region returns the region the client probes.
func (c *Client) Region() string { return c.region }
