package setupcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// configTemplate is the commented example configuration written by
// CreateTemplates. Placeholder values must be replaced before the
// configuration validates.
const configTemplate = `# AgentCore Gateway Configuration
# Replace placeholder values with your actual configuration

account_id: YOUR_ACCOUNT_ID
region: us-east-1
role_name: 'SRE-Agent-Gateway-Role '
endpoint_url: https://bedrock-agentcore-control.us-east-1.amazonaws.com
credential_provider_endpoint_url: https://us-east-1.prod.agent-credential-provider.cognito.aws.dev
user_pool_id: YOUR_USER_POOL_ID
client_id: YOUR_CLIENT_ID
s3_bucket: ''
s3_path_prefix: devops-multiagent-demo
credential_provider_name: sre-agent-api-key-credential-provider
provider_arn: arn:aws:bedrock-agentcore:REGION:ACCOUNT_ID:token-vault/default/apikeycredentialprovider/sre-agent-api-key-credential-provider
gateway_name: MyAgentCoreGateway
gateway_description: AgentCore Gateway for API Integration
target_description: S3 target for OpenAPI schema
`

// envTemplate is the example environment file written by CreateTemplates.
const envTemplate = `# Environment Variables for SRE Agent Gateway Setup
# Copy this file to .env and fill in your actual values

# Cognito Configuration for Token Generation
COGNITO_DOMAIN=https://yourdomain.auth.us-west-2.amazoncognito.com
COGNITO_CLIENT_ID=your-client-id-here
COGNITO_CLIENT_SECRET=your-client-secret-here
COGNITO_USER_POOL_ID=your-user-pool-id-here

# Backend API Key for credential provider
BACKEND_API_KEY=your-backend-api-key-here

# Anthropic API Credentials (optional - for Anthropic models)
ANTHROPIC_API_KEY=your-anthropic-api-key-here
`

// CreateTemplates writes the example config.yaml and .env.example into
// the manager's directory. Existing files are never overwritten, so the
// operation is idempotent.
func (m *Manager) CreateTemplates() error {
	if err := writeIfAbsent(m.configFile, configTemplate); err != nil {
		return err
	}
	envExample := filepath.Join(m.dir, envTemplateFileName)
	if err := writeIfAbsent(envExample, envTemplate); err != nil {
		return err
	}
	m.log.Info("created configuration templates",
		zap.String("config", m.configFile), zap.String("env", envExample))
	return nil
}

// writeIfAbsent writes content to path only when no file exists there.
func writeIfAbsent(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write template %s: %w", path, err)
	}
	return nil
}
