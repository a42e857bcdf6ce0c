package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileydigitalservices/payhere-go/domain"
)

func TestGlobalConfigValidate(t *testing.T) {
	assert := assert.New(t)

	// Sandbox and unset environments carry a built-in base URL.
	assert.NoError(GlobalConfig{}.Validate())
	assert.NoError(GlobalConfig{Environment: EnvSandbox}.Validate())

	err := GlobalConfig{Environment: EnvProduction}.Validate()
	require.Error(t, err)
	assert.Equal("baseUrl is required", err.Error())

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal("baseUrl", verr.Field)

	assert.NoError(GlobalConfig{Environment: EnvProduction, BaseURL: "https://pay.example.com"}.Validate())
}

func TestUserConfigValidate(t *testing.T) {
	assert := assert.New(t)

	err := UserConfig{}.Validate()
	require.Error(t, err)
	assert.Equal("appId is required", err.Error())

	err = UserConfig{AppID: "app-1"}.Validate()
	require.Error(t, err)
	assert.Equal("username is required", err.Error())

	err = UserConfig{AppID: "app-1", Username: "mike"}.Validate()
	require.Error(t, err)
	assert.Equal("password is required", err.Error())

	assert.NoError(UserConfig{AppID: "app-1", Username: "mike", Password: "s3cret"}.Validate())
}

func TestResolveDefaults(t *testing.T) {
	assert := assert.New(t)

	resolved, err := Resolve(GlobalConfig{}, UserConfig{AppID: "app-1", Username: "mike", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(EnvSandbox, resolved.Environment)
	assert.Equal(SandboxBaseURL, resolved.BaseURL)
	assert.Equal("app-1", resolved.AppID)
}

func TestResolveTrimsTrailingSlash(t *testing.T) {
	assert := assert.New(t)

	global := GlobalConfig{Environment: EnvProduction, BaseURL: "https://pay.example.com/"}
	resolved, err := Resolve(global, UserConfig{AppID: "app-1", Username: "mike", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal("https://pay.example.com", resolved.BaseURL)
}

func TestResolveRejectsInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Resolve(GlobalConfig{Environment: EnvProduction}, UserConfig{AppID: "a", Username: "u", Password: "p"})
	require.Error(t, err)
	assert.Equal("baseUrl is required", err.Error())

	_, err = Resolve(GlobalConfig{}, UserConfig{})
	require.Error(t, err)
	assert.Equal("appId is required", err.Error())
}

func TestFromEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("PAYHERE_ENVIRONMENT", "production")
	t.Setenv("PAYHERE_BASE_URL", "https://pay.example.com")
	t.Setenv("PAYHERE_APP_ID", "app-1")
	t.Setenv("PAYHERE_USERNAME", "mike")
	t.Setenv("PAYHERE_PASSWORD", "s3cret")

	global, user, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(EnvProduction, global.Environment)
	assert.Equal("https://pay.example.com", global.BaseURL)
	assert.Equal("app-1", user.AppID)
	assert.Equal("mike", user.Username)
	assert.Equal("s3cret", user.Password)
}

func TestFromEnvDefaultsToSandbox(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("PAYHERE_ENVIRONMENT", "")
	t.Setenv("PAYHERE_BASE_URL", "")

	global, _, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(EnvSandbox, global.Environment)
	assert.Empty(global.BaseURL)
}

func TestFromEnvLoadsDotenvFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	content := "PAYHERE_APP_ID=dotenv-app\nPAYHERE_USERNAME=dotenv-user\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	// godotenv does not override variables that are already set, even to the
	// empty string. Setenv registers the restore, Unsetenv clears the slot.
	for _, key := range []string{"PAYHERE_APP_ID", "PAYHERE_USERNAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Equivalent of testing.T.Chdir, which needs go1.24; this toolchain
	// builds with go1.21.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	_, user, err := FromEnv()
	require.NoError(t, err)

	assert.Equal("dotenv-app", user.AppID)
	assert.Equal("dotenv-user", user.Username)
}
