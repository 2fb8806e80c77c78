package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// The LIFF app registry and bot texts are easier to manage in YAML than
// as a pile of environment variables.
type YAMLConfig struct {
	// LIFFApps maps app-target names to their registered LIFF IDs.
	LIFFApps map[string]string `yaml:"liff_apps"`

	// WelcomeText is sent to every new follower.
	WelcomeText string `yaml:"welcome_text"`

	// SuppressedPrefixes are lead strings marking automated notices; texts
	// starting with one of them never get a reply.
	SuppressedPrefixes []string `yaml:"suppressed_prefixes"`
}

// DefaultYAMLConfig holds the compiled-in registry used when no config
// file is present.
func DefaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{
		LIFFApps: map[string]string{
			"home":     "2004873710-home0001",
			"checkin":  "2004873710-chkn0001",
			"signup":   "2004873710-sgnp0001",
			"service":  "2004873710-srvc0001",
			"schedule": "2004873710-schd0001",
			"donate":   "2004873710-dnte0001",
		},
		WelcomeText:        "歡迎加入龜馬山紫皇天乙真慶宮官方帳號！輸入「服務項目」即可查看線上服務。",
		SuppressedPrefixes: []string{"【", "✅", "📣"},
	}
}

// LoadYAMLConfig loads the YAML configuration file and merges it over the
// defaults. Path is determined by CONFIG_FILE env var, defaulting to
// "config.yaml". The config file is optional.
func LoadYAMLConfig() (*YAMLConfig, error) {
	cfg := DefaultYAMLConfig()

	path := getEnv("CONFIG_FILE", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var file YAMLConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for name, id := range file.LIFFApps {
		cfg.LIFFApps[name] = id
	}
	if file.WelcomeText != "" {
		cfg.WelcomeText = file.WelcomeText
	}
	if len(file.SuppressedPrefixes) > 0 {
		cfg.SuppressedPrefixes = file.SuppressedPrefixes
	}

	return cfg, nil
}
