package setupcfg

import (
	"fmt"
	"regexp"
	"strings"
)

// Required configuration keys, grouped by concern. Each group carries
// its own remediation suggestion.
var (
	requiredAWSKeys = []string{
		"account_id", "region", "role_name", "endpoint_url",
		"credential_provider_endpoint_url",
	}
	requiredCognitoKeys = []string{"user_pool_id", "client_id"}
	requiredGatewayKeys = []string{"gateway_name", "credential_provider_name"}
)

// PlaceholderValues are sentinel strings left behind when a template
// field was never filled in. An empty string counts as a placeholder.
var PlaceholderValues = []string{
	"YOUR_ACCOUNT_ID", "REGION", "", "YOUR_USER_POOL_ID",
	"YOUR_CLIENT_ID", "your-bucket-name",
}

var (
	// accountIDRe matches a 12-digit AWS account ID.
	accountIDRe = regexp.MustCompile(`^\d{12}$`)
	// regionRe matches region-like identifiers: alphanumeric plus
	// hyphen and underscore.
	regionRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// poolPrefixRe matches the region segment of a Cognito user pool
	// ID (the part before the underscore).
	poolPrefixRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// secureScheme is the required prefix for all endpoint URLs.
const secureScheme = "https://"

// Validate checks a loaded configuration mapping and returns the
// accumulated result. All checks run unconditionally; the result is
// invalid iff at least one error was recorded.
func Validate(config map[string]any) *ValidationResult {
	result := NewValidationResult()

	for _, key := range requiredAWSKeys {
		if isMissing(config[key]) {
			result.AddError(key,
				fmt.Sprintf("Required AWS parameter %q is missing or empty", key),
				fmt.Sprintf("Add %q to your config.yaml file", key))
		}
	}
	for _, key := range requiredCognitoKeys {
		if isMissing(config[key]) {
			result.AddError(key,
				fmt.Sprintf("Required Cognito parameter %q is missing or empty", key),
				"Run deployment/setup_cognito.sh to generate Cognito configuration")
		}
	}
	for _, key := range requiredGatewayKeys {
		if isMissing(config[key]) {
			result.AddError(key,
				fmt.Sprintf("Required gateway parameter %q is missing or empty", key),
				fmt.Sprintf("Add %q to your config.yaml file", key))
		}
	}

	validateAccountID(config, result)
	validateRegion(config, result)
	validateEndpoints(config, result)
	validateUserPoolID(config, result)
	validatePlaceholders(config, result)

	return result
}

// validateAccountID checks the account id is exactly 12 decimal digits
// after trimming. YAML may parse an unquoted account id as an integer,
// so the value is stringified first.
func validateAccountID(config map[string]any, result *ValidationResult) {
	v := config["account_id"]
	if isMissing(v) {
		return
	}
	accountID := strings.TrimSpace(fmt.Sprint(v))
	if !accountIDRe.MatchString(accountID) {
		result.AddError("account_id",
			fmt.Sprintf("Invalid AWS account ID format: %s", accountID),
			"AWS account ID must be a 12-digit number")
	}
}

// validateRegion checks the region contains only alphanumerics, hyphens,
// and underscores.
func validateRegion(config map[string]any, result *ValidationResult) {
	region, ok := stringValue(config, "region")
	if !ok || region == "" {
		return
	}
	if !regionRe.MatchString(strings.TrimSpace(region)) {
		result.AddError("region",
			fmt.Sprintf("Invalid AWS region format: %s", region),
			"AWS region should be in format like 'us-east-1'")
	}
}

// validateEndpoints checks both endpoint URLs use the secure scheme.
func validateEndpoints(config map[string]any, result *ValidationResult) {
	for _, key := range []string{"endpoint_url", "credential_provider_endpoint_url"} {
		url, ok := stringValue(config, key)
		if !ok || url == "" {
			continue
		}
		if !strings.HasPrefix(strings.TrimSpace(url), secureScheme) {
			result.AddError(key,
				fmt.Sprintf("Invalid endpoint URL: %s", url),
				"Endpoint URLs must use HTTPS")
		}
	}
}

// validateUserPoolID checks the pool ID has the region_POOLID shape: a
// separator underscore with an alphanumeric-or-hyphen segment before it.
func validateUserPoolID(config map[string]any, result *ValidationResult) {
	poolID, ok := stringValue(config, "user_pool_id")
	if !ok || poolID == "" {
		return
	}
	poolID = strings.TrimSpace(poolID)
	prefix, _, found := strings.Cut(poolID, "_")
	if !found || !poolPrefixRe.MatchString(prefix) {
		result.AddError("user_pool_id",
			fmt.Sprintf("Invalid Cognito User Pool ID format: %s", poolID),
			"User Pool ID should be in format 'region_POOLID'")
	}
}

// validatePlaceholders scans every string value for known template
// sentinels.
func validatePlaceholders(config map[string]any, result *ValidationResult) {
	for key, value := range config {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if isPlaceholder(s) {
			result.AddError(key,
				fmt.Sprintf("Configuration parameter %q contains placeholder value: %s", key, s),
				fmt.Sprintf("Replace %q with your actual %s", s, key))
		}
	}
}

// FindPlaceholders returns "key: value" strings for every configuration
// entry holding a known placeholder sentinel. Used by the setup checks
// to report unfilled template fields.
func FindPlaceholders(config map[string]any) []string {
	var found []string
	for key, value := range config {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if isPlaceholder(s) && s != "" {
			found = append(found, fmt.Sprintf("%s: %s", key, s))
		}
	}
	return found
}

// isPlaceholder reports whether s is one of the known sentinel values.
func isPlaceholder(s string) bool {
	for _, p := range PlaceholderValues {
		if s == p {
			return true
		}
	}
	return false
}

// isMissing reports whether a configuration value is absent or empty.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

// stringValue returns the string form of a configuration value, or
// false if the key is absent or not a string.
func stringValue(config map[string]any, key string) (string, bool) {
	v, ok := config[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
