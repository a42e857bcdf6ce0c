// Package config resolves the user-supplied SDK configuration into the
// connection settings the resource clients consume.
package config

import (
	"strings"

	"github.com/rileydigitalservices/payhere-go/domain"
)

// Environment selects which gateway deployment the SDK talks to.
type Environment string

const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

// SandboxBaseURL is the built-in default used when the environment resolves
// to sandbox and no base URL is configured. Any other environment requires
// an explicit base URL.
const SandboxBaseURL = "https://api.sandbox.payhere.africa"

// GlobalConfig carries the process-wide connection settings. Immutable once
// the client is constructed.
type GlobalConfig struct {
	Environment Environment
	BaseURL     string
}

// Validate checks the connection settings: an environment other than
// sandbox demands an explicit base URL, sandbox (or unset) carries no
// constraint.
func (c GlobalConfig) Validate() error {
	if c.Environment == "" || c.Environment == EnvSandbox {
		return nil
	}
	if c.BaseURL == "" {
		return &domain.ValidationError{Field: "baseUrl", Message: "baseUrl is required"}
	}
	return nil
}

// UserConfig carries the partner credentials. Immutable once the client is
// constructed.
type UserConfig struct {
	AppID    string
	Username string
	Password string
}

// Validate checks that every credential field is present.
func (c UserConfig) Validate() error {
	if c.AppID == "" {
		return &domain.ValidationError{Field: "appId", Message: "appId is required"}
	}
	if c.Username == "" {
		return &domain.ValidationError{Field: "username", Message: "username is required"}
	}
	if c.Password == "" {
		return &domain.ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

// Resolved is the validated connection settings bundle the resource clients
// are bound to.
type Resolved struct {
	Environment Environment
	BaseURL     string
	AppID       string
	Username    string
	Password    string
}

// Resolve validates both configs once and fills the defaults: environment
// sandbox, the built-in sandbox base URL when none is supplied. Performs no
// I/O.
func Resolve(global GlobalConfig, user UserConfig) (Resolved, error) {
	if err := global.Validate(); err != nil {
		return Resolved{}, err
	}
	if err := user.Validate(); err != nil {
		return Resolved{}, err
	}

	env := global.Environment
	if env == "" {
		env = EnvSandbox
	}
	baseURL := global.BaseURL
	if baseURL == "" {
		baseURL = SandboxBaseURL
	}

	return Resolved{
		Environment: env,
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		AppID:       user.AppID,
		Username:    user.Username,
		Password:    user.Password,
	}, nil
}
