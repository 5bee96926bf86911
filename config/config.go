package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"

	"github.com/FACorreiaa/go-date-itinerary/internal/api/itinerary"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Dotenv string `mapstructure:"dotenv"`
	Server struct {
		MetricsPort string `mapstructure:"metricsPort"`
	} `mapstructure:"server"`
	Dataset struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"dataset"`
	Evaluation struct {
		Seed         int64 `mapstructure:"seed"`
		TuningTrials int   `mapstructure:"tuningTrials"`
	} `mapstructure:"evaluation"`
	Planner itinerary.ScoringConfig `mapstructure:"planner"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// A partial config file only overrides the planner keys it names;
	// everything else keeps the tuned defaults.
	config.Planner = itinerary.DefaultScoringConfig()

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
