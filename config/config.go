package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "esap-chess/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// EngineConfig holds the settings of the move-search engine.
type EngineConfig struct {
	// Depth is the lookahead in plies. 2-3 plays quickly, 4-5 plays
	// noticeably stronger but slower.
	Depth int `json:"depth"`
	// Seed fixes the engine's random source; 0 seeds from the clock.
	Seed int64 `json:"seed"`
}

type Config struct {
	Engine    EngineConfig `json:"engine"`
	ShowBoard bool         `json:"show_board"`
}

var DefaultConfig = Config{
	Engine: EngineConfig{
		Depth: 3,
		Seed:  0,
	},
	ShowBoard: true,
}

// InitConfig loads the user's config file from the XDG config path, falling
// back to DefaultConfig when none exists. A file that exists but cannot be
// parsed is an error, not a silent fallback.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Engine.Depth < 1 {
		return &InvalidConfig{"engine depth must be at least 1"}
	}
	if c.Engine.Depth > 8 {
		return &InvalidConfig{"engine depth above 8 is unplayably slow"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parsing config %s: %w", filePath, err)
	}
	return nil
}
