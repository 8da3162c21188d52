package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_BloodAPIConfig(t *testing.T) {
	os.Setenv("BLOOD_API_BASE_URL", "https://blood.example.org/api")
	os.Setenv("BLOOD_API_KEY", "test-key")
	os.Setenv("BLOOD_API_FORCE_MOCK", "true")
	defer func() {
		os.Unsetenv("BLOOD_API_BASE_URL")
		os.Unsetenv("BLOOD_API_KEY")
		os.Unsetenv("BLOOD_API_FORCE_MOCK")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "https://blood.example.org/api", cfg.BloodAPI.BaseURL)
	assert.Equal(t, "test-key", cfg.BloodAPI.APIKey)
	assert.True(t, cfg.BloodAPI.ForceMock)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("BLOOD_API_BASE_URL")
	os.Unsetenv("BLOOD_API_KEY")
	os.Unsetenv("BLOOD_API_FORCE_MOCK")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "", cfg.BloodAPI.BaseURL)
	assert.Equal(t, "", cfg.BloodAPI.APIKey)
	assert.False(t, cfg.BloodAPI.ForceMock)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
}

func TestBloodAPIConfig_UseMock(t *testing.T) {
	tests := []struct {
		name string
		cfg  BloodAPIConfig
		want bool
	}{
		{"forced mock", BloodAPIConfig{BaseURL: "https://blood.example.org", ForceMock: true}, true},
		{"no base url", BloodAPIConfig{}, true},
		{"configured backend", BloodAPIConfig{BaseURL: "https://blood.example.org"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.UseMock())
		})
	}
}
