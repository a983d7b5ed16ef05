// @title CampaignControl API
// @version 1.0
// @description Backend API for the campaign dashboard: vote goals, budgets, voter files, compliance and AI drafting

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	"os"

	_ "github.com/Felipeu28/CampaignControl-sub001/docs"

	"github.com/Felipeu28/CampaignControl-sub001/api"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(); err != nil {
			logging.Log.Warnf("No .env file loaded: %v", err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
