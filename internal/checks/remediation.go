package checks

import (
	"fmt"
	"os"
)

// FixScriptName is the remediation script written next to the config
// when any check fails.
const FixScriptName = "fix_setup.sh"

// fixScript is the remediation template. Each block guards on the gap
// it fixes, so the script is safe to run regardless of which checks
// failed.
const fixScript = `#!/bin/bash
# Auto-generated fix script for SRE Agent setup issues

echo "🔧 Fixing SRE Agent setup issues..."

# Fix 1: Install missing prerequisites
if ! command -v aws &> /dev/null; then
    echo "Installing AWS CLI..."
    curl "https://awscli.amazonaws.com/awscli-exe-linux-x86_64.zip" -o "awscliv2.zip"
    unzip awscliv2.zip
    sudo ./aws/install
    rm -rf aws awscliv2.zip
fi

if ! command -v uv &> /dev/null; then
    echo "Installing uv package manager..."
    curl -LsSf https://astral.sh/uv/install.sh | sh
    source ~/.bashrc
fi

# Fix 2: Create configuration templates
if [ ! -f "config.yaml" ]; then
    echo "Creating config.yaml template..."
    sre-gateway config init
    echo "⚠️  Please edit config.yaml with your values"
fi

if [ ! -f ".env" ]; then
    echo "Creating .env template..."
    cp .env.example .env
    echo "⚠️  Please edit .env with your values"
fi

# Fix 3: Create self-signed TLS certificates (for testing)
if [ ! -f "/opt/ssl/privkey.pem" ]; then
    echo "Creating self-signed TLS certificates..."
    sudo mkdir -p /opt/ssl
    sudo openssl req -x509 -newkey rsa:4096 -keyout /opt/ssl/privkey.pem -out /opt/ssl/fullchain.pem -days 365 -nodes -subj "/C=US/ST=State/L=City/O=Organization/CN=localhost"
    echo "✅ Self-signed certificates created (for testing only)"
fi

# Fix 4: Configure AWS credentials (interactive)
if ! aws sts get-caller-identity &> /dev/null; then
    echo "AWS credentials not configured. Please run:"
    echo "  aws configure"
    echo "Or attach an IAM role to your EC2 instance"
fi

echo "🎉 Fix script completed!"
echo "Next steps:"
echo "1. Edit config.yaml with your AWS account details"
echo "2. Edit .env with your API keys"
echo "3. Re-run: sre-gateway validate"
`

// WriteFixScript writes the remediation script to path with executable
// permission. An existing script is always overwritten.
func WriteFixScript(path string) error {
	if err := os.WriteFile(path, []byte(fixScript), 0o755); err != nil {
		return fmt.Errorf("write fix script %s: %w", path, err)
	}
	return nil
}
