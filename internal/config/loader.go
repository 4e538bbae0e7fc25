package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aleister1102/urlclean/internal/errorwrapper"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. The path passed on the command line
// 2. URLCLEAN_CONFIG_PATH environment variable
// 3. urlclean.yaml / urlclean.json in the current working directory
// 4. urlclean.yaml / urlclean.json in the executable's directory
// Returns "" when no config file is found, which means defaults apply.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if _, err := os.Stat(configFilePathFlag); err == nil {
			return configFilePathFlag
		}
	}

	if envPath := os.Getenv("URLCLEAN_CONFIG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	var locations []string
	if cwd, err := os.Getwd(); err == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if len(locations) == 0 || locations[0] != exeDir {
			locations = append(locations, exeDir)
		}
	}

	defaultFiles := []string{"urlclean.yaml", "urlclean.json"}
	for _, loc := range locations {
		for _, file := range defaultFiles {
			path := filepath.Join(loc, file)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// LoadConfig loads configuration from the given path. An empty path
// yields the defaults. The format is chosen by file extension (.json is
// JSON, everything else is parsed as YAML). The loaded config is
// validated before being returned.
func LoadConfig(configPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to read config file")
		}

		if strings.EqualFold(filepath.Ext(configPath), ".json") {
			err = json.Unmarshal(data, cfg)
		} else {
			err = yaml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse config file")
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
