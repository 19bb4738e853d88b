package checks

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/YogeshAbnave/sre-project/internal/setupcfg"
)

// requiredEnvVars must be present and non-empty in the .env file (or
// process environment) for the gateway setup to run.
var requiredEnvVars = []string{"BACKEND_API_KEY"}

// Configuration verifies the config.yaml and .env files exist and carry
// real (non-placeholder) values. A missing .env is only a warning; a
// present .env missing required variables is a failure.
func Configuration(mgr *setupcfg.Manager, p *Printer) bool {
	p.Info("Checking Configuration Files")

	allGood := checkConfigFile(mgr, p)
	if !checkEnvFile(mgr, p) {
		allGood = false
	}
	return allGood
}

// checkConfigFile validates presence, parseability, and placeholder
// content of config.yaml.
func checkConfigFile(mgr *setupcfg.Manager, p *Printer) bool {
	config, err := mgr.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.Error("config.yaml not found")
			p.Detail("Create it with: sre-gateway config init, then fill in your values")
		} else {
			p.Error("config.yaml invalid: %v", err)
		}
		return false
	}

	if found := setupcfg.FindPlaceholders(config); len(found) > 0 {
		p.Error("config.yaml contains placeholder values")
		for _, entry := range found {
			p.Detail("- %s", entry)
		}
		return false
	}

	p.Success("config.yaml - OK")
	return true
}

// checkEnvFile validates the .env file when present and its required
// variables.
func checkEnvFile(mgr *setupcfg.Manager, p *Printer) bool {
	if _, err := os.Stat(mgr.EnvPath()); errors.Is(err, fs.ErrNotExist) {
		p.Warning(".env file not found")
		p.Detail("Create it from the template: cp .env.example .env")
		return true
	}

	env, err := mgr.LoadEnvironment()
	if err != nil {
		p.Error(".env file unreadable: %v", err)
		return false
	}

	result := setupcfg.ValidateEnvironment(requiredEnvVars, env)
	if !result.IsValid {
		missing := make([]string, 0, len(result.Errors))
		for _, ve := range result.Errors {
			missing = append(missing, ve.Field)
		}
		p.Error(".env missing required variables: %s", strings.Join(missing, ", "))
		return false
	}

	p.Success(".env file - OK")
	return true
}
