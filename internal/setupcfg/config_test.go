package setupcfg

import "testing"

func TestNewAWSConfigTrimsIdentifiers(t *testing.T) {
	cfg := NewAWSConfig(" 123456789012 ", "us-east-1", "SRE-Agent-Gateway-Role ", "https://example.com", "https://cred.example.com")
	if cfg.AccountID != "123456789012" {
		t.Errorf("account id = %q, want trimmed", cfg.AccountID)
	}
	if cfg.RoleName != "SRE-Agent-Gateway-Role" {
		t.Errorf("role name = %q, want trimmed", cfg.RoleName)
	}
	if cfg.EndpointURL != "https://example.com" {
		t.Errorf("endpoint = %q", cfg.EndpointURL)
	}
}

func TestNewCognitoConfigTrims(t *testing.T) {
	cfg := NewCognitoConfig(" us-east-1_Abc123 ", " clientid ")
	if cfg.UserPoolID != "us-east-1_Abc123" {
		t.Errorf("user pool id = %q, want trimmed", cfg.UserPoolID)
	}
	if cfg.ClientID != "clientid" {
		t.Errorf("client id = %q, want trimmed", cfg.ClientID)
	}
}

func TestNewS3ConfigDefaults(t *testing.T) {
	cfg := NewS3Config(" my-bucket ", "")
	if cfg.Bucket != "my-bucket" {
		t.Errorf("bucket = %q, want trimmed", cfg.Bucket)
	}
	if cfg.PathPrefix != DefaultS3PathPrefix {
		t.Errorf("path prefix = %q, want default %q", cfg.PathPrefix, DefaultS3PathPrefix)
	}
	if !cfg.AutoCreate {
		t.Error("auto create should default to true")
	}

	custom := NewS3Config("b", "custom/prefix")
	if custom.PathPrefix != "custom/prefix" {
		t.Errorf("path prefix = %q, want custom/prefix", custom.PathPrefix)
	}
}

func TestNewCredentialConfigTrims(t *testing.T) {
	cfg := NewCredentialConfig(" provider ", "key", " us-east-1 ", "https://cred.example.com")
	if cfg.ProviderName != "provider" {
		t.Errorf("provider = %q, want trimmed", cfg.ProviderName)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("region = %q, want trimmed", cfg.Region)
	}
	if cfg.APIKey != "key" {
		t.Errorf("api key = %q, must not be altered", cfg.APIKey)
	}
}

func TestNewGatewayConfigTrimsName(t *testing.T) {
	cfg := NewGatewayConfig(" MyGateway ", "desc", "arn:aws:iam::123456789012:role/x")
	if cfg.Name != "MyGateway" {
		t.Errorf("name = %q, want trimmed", cfg.Name)
	}
	if cfg.Description != "desc" {
		t.Errorf("description = %q", cfg.Description)
	}
}
