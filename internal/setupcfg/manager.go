package setupcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Configuration file names within the manager's directory.
const (
	configFileName      = "config.yaml"
	envFileName         = ".env"
	envTemplateFileName = ".env.example"
)

// identifierKeys are stripped of surrounding whitespace at load time.
// Values copied out of the AWS console frequently carry stray spaces.
var identifierKeys = []string{
	"account_id", "role_name", "user_pool_id", "client_id",
	"s3_bucket", "credential_provider_name",
}

// Manager loads, validates, and saves the gateway setup configuration
// rooted at a single directory.
type Manager struct {
	dir        string
	configFile string
	envFile    string
	log        *zap.Logger
}

// NewManager creates a Manager for the given configuration directory.
// A nil logger is replaced with a no-op logger.
func NewManager(dir string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		dir:        dir,
		configFile: filepath.Join(dir, configFileName),
		envFile:    filepath.Join(dir, envFileName),
		log:        log,
	}
}

// ConfigPath returns the path of the managed config.yaml.
func (m *Manager) ConfigPath() string { return m.configFile }

// EnvPath returns the path of the managed .env file.
func (m *Manager) EnvPath() string { return m.envFile }

// Load reads the default config.yaml.
func (m *Manager) Load() (map[string]any, error) {
	return m.LoadFrom(m.configFile)
}

// LoadFrom reads a YAML configuration file. A missing file returns an
// error wrapping fs.ErrNotExist; malformed YAML returns a parse error.
// An empty (null) document yields an empty mapping. Identifier-like
// values are trimmed of surrounding whitespace.
func (m *Manager) LoadFrom(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("read configuration file %s: %w", path, err)
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		m.log.Error("invalid YAML in config file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("parse configuration file %s: %w", path, err)
	}
	if config == nil {
		config = map[string]any{}
	}

	for _, key := range identifierKeys {
		if s, ok := config[key].(string); ok {
			config[key] = strings.TrimSpace(s)
		}
	}

	m.log.Info("loaded configuration", zap.String("path", path), zap.Int("keys", len(config)))
	return config, nil
}

// Save writes the configuration to the default config.yaml.
func (m *Manager) Save(config map[string]any) error {
	return m.SaveTo(config, m.configFile)
}

// SaveTo serializes the configuration mapping to the given path,
// creating parent directories as needed.
func (m *Manager) SaveTo(config map[string]any, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write configuration file %s: %w", path, err)
	}
	m.log.Info("saved configuration", zap.String("path", path))
	return nil
}

// UpdateParameter sets a single configuration key and saves the file.
// A missing configuration file starts from an empty mapping.
func (m *Manager) UpdateParameter(key, value string) error {
	config, err := m.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		config = map[string]any{}
	}
	config[key] = value
	if err := m.Save(config); err != nil {
		return err
	}
	m.log.Info("updated configuration parameter", zap.String("key", key))
	return nil
}

// LoadEnvironment parses the .env file into a key/value mapping. Blank
// lines and comment lines are skipped; the first '=' splits key from
// value and both sides are trimmed. A missing file yields an empty map.
func (m *Manager) LoadEnvironment() (map[string]string, error) {
	if _, err := os.Stat(m.envFile); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(m.envFile)
	if err != nil {
		return nil, fmt.Errorf("parse environment file %s: %w", m.envFile, err)
	}
	m.log.Info("loaded environment file", zap.String("path", m.envFile), zap.Int("vars", len(env)))
	return env, nil
}

// MergedEnvironment returns the process environment overlaid with the
// values from the .env file. File values take precedence. The merged
// mapping is an explicit input for ValidateEnvironment rather than an
// implicit global.
func (m *Manager) MergedEnvironment() (map[string]string, error) {
	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if found {
			merged[key] = value
		}
	}
	fileEnv, err := m.LoadEnvironment()
	if err != nil {
		return nil, err
	}
	for k, v := range fileEnv {
		merged[k] = v
	}
	return merged, nil
}

// ValidateEnvironment checks that every required key is present and
// non-empty in the given environment mapping.
func ValidateEnvironment(required []string, env map[string]string) *ValidationResult {
	result := NewValidationResult()
	for _, key := range required {
		if env[key] == "" {
			result.AddError(key,
				fmt.Sprintf("Required environment variable %q is not set", key),
				fmt.Sprintf("Set %s in your .env file or environment", key))
		}
	}
	return result
}

// AWSConfig loads and validates the configuration, returning the typed
// AWS view. Validation failures are aggregated into a single error.
func (m *Manager) AWSConfig() (AWSConfig, error) {
	config, err := m.Load()
	if err != nil {
		return AWSConfig{}, err
	}
	validation := Validate(config)
	if !validation.IsValid {
		var merr *multierror.Error
		for _, ve := range validation.Errors {
			merr = multierror.Append(merr, fmt.Errorf("%s: %s", ve.Field, ve.Message))
		}
		return AWSConfig{}, fmt.Errorf("invalid AWS configuration: %w", merr.ErrorOrNil())
	}
	return NewAWSConfig(
		fmt.Sprint(config["account_id"]),
		getString(config, "region", ""),
		getString(config, "role_name", ""),
		getString(config, "endpoint_url", ""),
		getString(config, "credential_provider_endpoint_url", ""),
	), nil
}

// CredentialConfig loads the configuration and returns the typed
// credential-provider view, applying defaults for optional fields.
func (m *Manager) CredentialConfig(apiKey string) (CredentialConfig, error) {
	config, err := m.Load()
	if err != nil {
		return CredentialConfig{}, err
	}
	return NewCredentialConfig(
		getString(config, "credential_provider_name", DefaultCredentialProvider),
		apiKey,
		getString(config, "region", DefaultRegion),
		getString(config, "credential_provider_endpoint_url", DefaultCredentialEndpoint),
	), nil
}

// GatewayConfig loads the configuration and returns the typed gateway
// view, applying defaults for optional fields.
func (m *Manager) GatewayConfig() (GatewayConfig, error) {
	config, err := m.Load()
	if err != nil {
		return GatewayConfig{}, err
	}
	return NewGatewayConfig(
		getString(config, "gateway_name", DefaultGatewayName),
		getString(config, "gateway_description", DefaultGatewayDescription),
		getString(config, "provider_arn", ""),
	), nil
}

// CognitoConfig loads the configuration and returns the typed Cognito
// view.
func (m *Manager) CognitoConfig() (CognitoConfig, error) {
	config, err := m.Load()
	if err != nil {
		return CognitoConfig{}, err
	}
	return NewCognitoConfig(
		getString(config, "user_pool_id", ""),
		getString(config, "client_id", ""),
	), nil
}

// S3Config loads the configuration and returns the typed S3 view.
func (m *Manager) S3Config() (S3Config, error) {
	config, err := m.Load()
	if err != nil {
		return S3Config{}, err
	}
	return NewS3Config(
		getString(config, "s3_bucket", ""),
		getString(config, "s3_path_prefix", ""),
	), nil
}

// getString returns the string value for key, or fallback when the key
// is absent, empty, or not a string.
func getString(config map[string]any, key, fallback string) string {
	if s, ok := config[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
