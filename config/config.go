package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
)

// config structure
type Config struct {
	API      APIConfig      `mapstructure:"API"`
	Github   GithubConfig   `mapstructure:"GITHUB"`
	Tasks    TasksConfig    `mapstructure:"TASKS"`
	Defaults DefaultsConfig `mapstructure:"DEFAULTS"`
	Logs     LogsConfig     `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort            string `mapstructure:"ListenPort"`
	RequestTimeoutSeconds int    `mapstructure:"RequestTimeoutSeconds"`
}

type GithubConfig struct {
	Token string `mapstructure:"Token"` // can also be set through the GITHUB_TOKEN environment variable
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed"`
}

type DefaultsConfig struct {
	Branch     string `mapstructure:"Branch"`
	LangsCount int    `mapstructure:"LangsCount"`
	MaxRepos   int    `mapstructure:"MaxRepos"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

// Load reads config/config.toml when present, and keeps the in-code defaults otherwise
// the github token from the GITHUB_TOKEN environment variable always takes precedence
func Load() (*Config, error) {
	cfg := GetDefault()

	if configFilePath, found := findConfigFile(); found {
		if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
			return nil, err
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Github.Token = token
	}

	return cfg, nil
}

func findConfigFile() (string, bool) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err == nil {
		if _, err := os.Stat(dir + "/config/config.toml"); !errors.Is(err, os.ErrNotExist) {
			return dir + "/config/config.toml", true
		}
	}

	if _, err := os.Stat("config/config.toml"); !errors.Is(err, os.ErrNotExist) {
		return "config/config.toml", true
	}

	return "", false
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort:            "5000",
			RequestTimeoutSeconds: 30,
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
		},
		Defaults: DefaultsConfig{
			Branch:     "develop",
			LangsCount: 6,
			MaxRepos:   60,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
	}
}
