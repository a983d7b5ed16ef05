package api

import (
	"sync"

	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	AIConfig
}

type StorageConfig struct {
	TableNameProfiles string
	TableNameDrafts   string
}

type ServerConfig struct {
	Port int
}

type AIConfig struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameProfiles: viper.GetString("storage.TableNameProfiles"),
			TableNameDrafts:   viper.GetString("storage.TableNameDrafts"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		AIConfig: AIConfig{
			// The key never lives in the config file, only in the environment.
			APIKey:     viper.GetString("OPENAI_API_KEY"),
			BaseURL:    getStringOrDefault("ai.BaseURL", ""),
			TextModel:  getStringOrDefault("ai.TextModel", "gpt-4o-mini"),
			ImageModel: getStringOrDefault("ai.ImageModel", "dall-e-3"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
