package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/ems-console/internal/config"
	"github.com/stretchr/testify/assert"
)

const fullConfig = `
env: development
role: ADMIN
api:
  url: http://localhost:8081/api/employees/
  token: secret
  timeout: 5s
  page_size: 50
search:
  debounce: 250ms
import:
  workers: 8
monitoring:
  port: 9090
`

func TestMustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", fullConfig)
	t.Setenv("CONFIG_PATH", file.Name())

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "ADMIN", cfg.Role)
	assert.Equal(t, "http://localhost:8081/api/employees", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 50, cfg.API.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 8, cfg.Import.Workers)
	assert.Equal(t, 9090, cfg.Monitoring.Port)
}

func TestMustLoad_Defaults(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "api:\n  url: http://example.com/api/employees\n")
	t.Setenv("CONFIG_PATH", file.Name())

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "USER", cfg.Role)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 20, cfg.API.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 4, cfg.Import.Workers)
	assert.Equal(t, 0, cfg.Monitoring.Port)
}

func TestMustLoad_EnvOverride(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", fullConfig)
	t.Setenv("CONFIG_PATH", file.Name())
	t.Setenv("EMS_ROLE", "USER")
	t.Setenv("EMS_API_URL", "http://override/api/employees")

	cfg := config.MustLoad()

	assert.Equal(t, "USER", cfg.Role)
	assert.Equal(t, "http://override/api/employees", cfg.API.BaseURL)
}

func TestMustLoad_EmptyPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	assert.PanicsWithValue(t, "config path is empty", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/definitely/not/here.yaml")

	assert.PanicsWithValue(t, "config file does not exist: /definitely/not/here.yaml", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MissingURL(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "env: local\n")
	t.Setenv("CONFIG_PATH", file.Name())

	assert.PanicsWithValue(t, "api url is empty", func() {
		config.MustLoad()
	})
}

func TestMustLoad_DebounceError(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "api:\n  url: http://example.com\nsearch:\n  debounce: error_value\n")
	t.Setenv("CONFIG_PATH", file.Name())

	assert.PanicsWithValue(t, "failed to parse search debounce from configuration", func() {
		config.MustLoad()
	})
}
