package awsprobe

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// Error category constants classify probe failures.
const (
	CategoryPermission    = "permission"
	CategoryConfiguration = "configuration"
	CategoryResource      = "resource"
	CategoryTimeout       = "timeout"
	CategoryNetwork       = "network"
)

// apiErrorCategories maps AWS API error codes to categories. Matching
// on the typed error code avoids sniffing message text.
var apiErrorCategories = map[string]string{
	"AccessDenied":                CategoryPermission,
	"AccessDeniedException":       CategoryPermission,
	"UnauthorizedException":       CategoryPermission,
	"UnrecognizedClientException": CategoryPermission,
	"InvalidClientTokenId":        CategoryPermission,
	"ExpiredToken":                CategoryPermission,
	"ValidationException":         CategoryConfiguration,
	"InvalidParameterException":   CategoryConfiguration,
	"ResourceNotFoundException":   CategoryResource,
	"ThrottlingException":         CategoryNetwork,
	"RequestTimeout":              CategoryTimeout,
}

// Remediation hints per category.
var categoryHints = map[string]string{
	CategoryPermission:    "verify the active AWS credentials and attached IAM policies",
	CategoryConfiguration: "check the config.yaml values match AWS requirements",
	CategoryResource:      "the referenced resource does not exist; check names and ARNs",
	CategoryTimeout:       "the call timed out; retry after checking network connectivity",
	CategoryNetwork:       "verify the AWS region is correct and network connectivity is available",
}

// Classify determines a failure category and remediation hint for an
// AWS call error. Typed API error codes are consulted first; context
// and transport errors next; message keywords only as a last resort.
func Classify(err error) (category, hint string) {
	if err == nil {
		return CategoryResource, ""
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if cat, ok := apiErrorCategories[apiErr.ErrorCode()]; ok {
			return cat, categoryHints[cat]
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTimeout, categoryHints[CategoryTimeout]
	}

	return classifyMessage(err.Error())
}

// Keyword groups for the message fallback, used when the error carries
// no typed code (e.g. credential chain and dial failures).
var (
	permissionKeywords = []string{
		"access denied", "not authorized", "forbidden",
		"no valid providers", "failed to retrieve credentials",
	}
	networkKeywords = []string{
		"connection refused", "no such host", "dial tcp", "tls handshake",
	}
	timeoutKeywords = []string{"deadline exceeded", "timeout"}
)

// classifyMessage determines category and hint from an error string.
func classifyMessage(msg string) (category, hint string) {
	lower := strings.ToLower(msg)
	switch {
	case containsAny(lower, permissionKeywords):
		return CategoryPermission, categoryHints[CategoryPermission]
	case containsAny(lower, networkKeywords):
		return CategoryNetwork, categoryHints[CategoryNetwork]
	case containsAny(lower, timeoutKeywords):
		return CategoryTimeout, categoryHints[CategoryTimeout]
	}
	return CategoryResource, ""
}

// containsAny returns true if s contains any of the substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
