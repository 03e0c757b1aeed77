package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	BlockIP               string   `json:"block_ip"`
	Sources               []string `json:"sources"`
	BaseHostsFile         string   `json:"base_hosts_file"`
	HostsFile             string   `json:"hosts_file"`
	ProbeHost             string   `json:"probe_host"`
	ProbeURL              string   `json:"probe_url"`
	TimeoutSeconds        int      `json:"timeout_seconds"`
	UserAgent             string   `json:"user_agent"`
	UpdateIntervalMinutes int      `json:"update_interval_minutes"`
	LogFile               string   `json:"log_file"`
}

var (
	ConfigDir  = "/etc/update-hosts"
	ConfigFile = filepath.Join(ConfigDir, "config.json")
	config     *Config
)

// DefaultSources are plaintext hosts-format blocklists that work out
// of the box.
var DefaultSources = []string{
	"https://winhelp2002.mvps.org/hosts.txt",
	"https://someonewhocares.org/hosts/zero/hosts",
	"https://pgl.yoyo.org/adservers/serverlist.php?hostformat=hosts&showintro=0&mimetype=plaintext",
	"https://raw.githubusercontent.com/StevenBlack/hosts/master/hosts",
}

func InitConfig() error {
	if err := os.MkdirAll(ConfigDir, 0755); err != nil {
		return err
	}

	config = &Config{}

	if _, err := os.Stat(ConfigFile); err == nil {
		data, err := os.ReadFile(ConfigFile)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, config); err != nil {
			fmt.Println("Warning: Config file corrupted, creating new one")
			applyDefaults(config)
			return SaveConfig()
		}
		applyDefaults(config)
		return nil
	}

	fmt.Println("Creating update-hosts configuration file...")
	applyDefaults(config)
	return SaveConfig()
}

func GetConfig() *Config {
	return config
}

func SaveConfig() error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigFile, data, 0644)
}

func applyDefaults(cfg *Config) {
	if cfg.BlockIP == "" {
		cfg.BlockIP = "0.0.0.0"
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = append([]string{}, DefaultSources...)
	}
	if cfg.BaseHostsFile == "" {
		cfg.BaseHostsFile = filepath.Join(ConfigDir, "base-hosts")
	}
	if cfg.ProbeHost == "" {
		cfg.ProbeHost = "example.com"
	}
	if cfg.ProbeURL == "" {
		cfg.ProbeURL = "http://connectivitycheck.gstatic.com/generate_204"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "update-hosts/1.0"
	}
	if cfg.UpdateIntervalMinutes == 0 {
		cfg.UpdateIntervalMinutes = 24 * 60
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "/var/log/update-hosts.log"
	}
}

func AddSource(url string) error {
	for _, existing := range config.Sources {
		if existing == url {
			fmt.Printf("'%s' is already in the source list\n", url)
			return nil
		}
	}
	config.Sources = append(config.Sources, url)
	fmt.Printf("Added '%s' to blocklist sources\n", url)
	return SaveConfig()
}

func RemoveSource(url string) error {
	for i, existing := range config.Sources {
		if existing == url {
			config.Sources = append(config.Sources[:i], config.Sources[i+1:]...)
			fmt.Printf("Removed '%s' from blocklist sources\n", url)
			return SaveConfig()
		}
	}
	return fmt.Errorf("source %s not found", url)
}
