package awsprobe

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"go.uber.org/zap"
)

// GatewayStatusNotFound is returned when no gateway matches the
// configured name.
const GatewayStatusNotFound = "not_found"

// GatewayStatus looks up the managed gateway by name via the AgentCore
// control plane and returns its status string (e.g. "READY"). A missing
// gateway yields GatewayStatusNotFound without error.
func (c *Client) GatewayStatus(ctx context.Context, name string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var nextToken *string
	for {
		out, err := c.gateway.ListGateways(cctx, &bedrockagentcorecontrol.ListGatewaysInput{
			MaxResults: aws.Int32(listPageSize),
			NextToken:  nextToken,
		})
		if err != nil {
			return "", err
		}
		for _, gw := range out.Items {
			if aws.ToString(gw.Name) == name {
				status := strings.ToUpper(string(gw.Status))
				c.log.Info("gateway found",
					zap.String("name", name), zap.String("status", status))
				return status, nil
			}
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	c.log.Warn("gateway not found", zap.String("name", name))
	return GatewayStatusNotFound, nil
}
