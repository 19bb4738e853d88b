package setupcfg

import "strings"

// Default values applied when optional configuration keys are absent.
const (
	DefaultS3PathPrefix       = "devops-multiagent-demo"
	DefaultCredentialProvider = "sre-agent-api-key-credential-provider"
	DefaultCredentialEndpoint = "https://us-east-1.prod.agent-credential-provider.cognito.aws.dev"
	DefaultGatewayName        = "MyAgentCoreGateway"
	DefaultGatewayDescription = "AgentCore Gateway for API Integration"
	DefaultRegion             = "us-east-1"
)

// AWSConfig holds the required AWS parameters for gateway setup.
type AWSConfig struct {
	AccountID                     string
	Region                        string
	RoleName                      string
	EndpointURL                   string
	CredentialProviderEndpointURL string
}

// NewAWSConfig builds an AWSConfig, trimming whitespace from the
// critical identifiers.
func NewAWSConfig(accountID, region, roleName, endpointURL, credentialEndpointURL string) AWSConfig {
	return AWSConfig{
		AccountID:                     strings.TrimSpace(accountID),
		Region:                        region,
		RoleName:                      strings.TrimSpace(roleName),
		EndpointURL:                   endpointURL,
		CredentialProviderEndpointURL: credentialEndpointURL,
	}
}

// CognitoConfig holds the Cognito identity-provider parameters.
type CognitoConfig struct {
	UserPoolID   string
	ClientID     string
	Domain       string
	ClientSecret string
}

// NewCognitoConfig builds a CognitoConfig, trimming the pool and client
// identifiers.
func NewCognitoConfig(userPoolID, clientID string) CognitoConfig {
	return CognitoConfig{
		UserPoolID: strings.TrimSpace(userPoolID),
		ClientID:   strings.TrimSpace(clientID),
	}
}

// S3Config holds the S3 schema-storage parameters.
type S3Config struct {
	Bucket     string
	PathPrefix string
	AutoCreate bool
}

// NewS3Config builds an S3Config with the default path prefix when none
// is given. Bucket may be empty; auto-create defaults to true.
func NewS3Config(bucket, pathPrefix string) S3Config {
	if pathPrefix == "" {
		pathPrefix = DefaultS3PathPrefix
	}
	return S3Config{
		Bucket:     strings.TrimSpace(bucket),
		PathPrefix: pathPrefix,
		AutoCreate: true,
	}
}

// CredentialConfig holds credential-provider parameters.
type CredentialConfig struct {
	ProviderName string
	APIKey       string
	Region       string
	EndpointURL  string
}

// NewCredentialConfig builds a CredentialConfig, trimming the provider
// name and region.
func NewCredentialConfig(providerName, apiKey, region, endpointURL string) CredentialConfig {
	return CredentialConfig{
		ProviderName: strings.TrimSpace(providerName),
		APIKey:       apiKey,
		Region:       strings.TrimSpace(region),
		EndpointURL:  endpointURL,
	}
}

// GatewayConfig holds the managed gateway parameters.
type GatewayConfig struct {
	Name        string
	Description string
	ProviderARN string
}

// NewGatewayConfig builds a GatewayConfig, trimming the gateway name.
func NewGatewayConfig(name, description, providerARN string) GatewayConfig {
	return GatewayConfig{
		Name:        strings.TrimSpace(name),
		Description: description,
		ProviderARN: providerARN,
	}
}
