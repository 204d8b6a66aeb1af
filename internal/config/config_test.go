package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIBaseURL:     "https://clicksalesmedia.com/api",
		AuthorID:       "author-1",
		PublishTimeout: 30 * time.Second,
		OpenAIKey:      "sk-test",
		TextModel:      "o4-mini",
		ImageModel:     "dall-e-3",
		PostsPerDay:    2,
		Languages:      []string{"en", "ar"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRequiresCredential(t *testing.T) {
	cfg := validConfig()
	cfg.OpenAIKey = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownLanguage(t *testing.T) {
	cfg := validConfig()
	cfg.Languages = []string{"en", "fr"}
	assert.Error(t, cfg.Validate())
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LANGS", "en, ar ,")
	assert.Equal(t, []string{"en", "ar"}, getEnvAsList("TEST_LANGS", "en"))

	assert.Equal(t, []string{"en", "ar"}, getEnvAsList("TEST_LANGS_UNSET", "en,ar"))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, getEnvAsDuration("TEST_TIMEOUT", time.Second))

	t.Setenv("TEST_TIMEOUT_BAD", "nonsense")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_TIMEOUT_BAD", time.Second))
}
