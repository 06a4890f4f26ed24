package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `env-default:"local" yaml:"env"`        // Env is the current environment: local, development, production.
	Role       string           `env-default:"USER"  yaml:"role"`       // Role of the operator: ADMIN or USER.
	API        APIConfig        `                    yaml:"api"`        // API holds the employee service connection settings.
	Search     SearchConfig     `                    yaml:"search"`     // Search holds the list view search settings.
	Import     ImportConfig     `                    yaml:"import"`     // Import holds the bulk import settings.
	Monitoring MonitoringConfig `                    yaml:"monitoring"` // Monitoring holds the metrics and health endpoint settings.
}

// APIConfig struct holds the configuration details for connecting to the employee service.
type APIConfig struct {
	BaseURL  string        `yaml:"url"`                         // BaseURL is the employee collection URL, e.g. `http://localhost:8081/api/employees`.
	Token    string        `yaml:"token"`                       // Token is sent as a bearer token when set.
	Timeout  time.Duration `yaml:"timeout"   env-default:"10s"` // Timeout bounds every request.
	PageSize int           `yaml:"page_size" env-default:"20"`  // PageSize is requested for list and search pages.
}

// SearchConfig struct holds the search input settings.
type SearchConfig struct {
	Debounce time.Duration `yaml:"debounce" env-default:"300ms"` // Debounce is the quiet period before a search is issued.
}

// ImportConfig struct holds the bulk import settings.
type ImportConfig struct {
	Workers int `yaml:"workers" env-default:"4"` // Workers bounds concurrent create requests.
}

// MonitoringConfig struct holds the monitoring server settings.
type MonitoringConfig struct {
	Port int `yaml:"port" env-default:"0"` // Port of the /metrics and /healthz server; 0 disables it.
}

const (
	defaultTimeout  = 10 * time.Second
	defaultDebounce = 300 * time.Millisecond
	defaultPageSize = 20
	defaultWorkers  = 4
)

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH and returns a Config struct.
// Every key can be overridden by an EMS_ prefixed environment variable, e.g. EMS_API_URL.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadFile(configPath)
}

// MustLoadFile loads the configuration from the given YAML file.
func MustLoadFile(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	vpr := viper.New()
	vpr.SetConfigFile(configPath)
	vpr.SetConfigType("yaml")
	vpr.SetEnvPrefix("EMS")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("role", "USER")
	vpr.SetDefault("api.url", "")
	vpr.SetDefault("api.token", "")
	vpr.SetDefault("api.timeout", defaultTimeout)
	vpr.SetDefault("api.page_size", defaultPageSize)
	vpr.SetDefault("search.debounce", defaultDebounce)
	vpr.SetDefault("import.workers", defaultWorkers)
	vpr.SetDefault("monitoring.port", 0)

	if err := vpr.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	cfg := &Config{
		Env:  vpr.GetString("env"),
		Role: vpr.GetString("role"),
		API: APIConfig{
			BaseURL:  strings.TrimRight(vpr.GetString("api.url"), "/"),
			Token:    vpr.GetString("api.token"),
			Timeout:  vpr.GetDuration("api.timeout"),
			PageSize: vpr.GetInt("api.page_size"),
		},
		Search: SearchConfig{
			Debounce: vpr.GetDuration("search.debounce"),
		},
		Import: ImportConfig{
			Workers: vpr.GetInt("import.workers"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
	}

	if cfg.API.BaseURL == "" {
		panic("api url is empty")
	}
	if cfg.API.Timeout <= 0 {
		panic("failed to parse api timeout from configuration")
	}
	if cfg.Search.Debounce <= 0 {
		panic("failed to parse search debounce from configuration")
	}
	if cfg.API.PageSize <= 0 {
		cfg.API.PageSize = defaultPageSize
	}
	if cfg.Import.Workers <= 0 {
		cfg.Import.Workers = defaultWorkers
	}

	return cfg
}
