// @title Festival Results API
// @version 1.0
// @description Backend API for festival result submission, approval, registrations and live scores

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token

// @securityDefinitions.apikey JuryToken
// @in header
// @name x-jury-token

// @securityDefinitions.apikey TeamToken
// @in header
// @name x-team-token
package main

import (
	_ "github.com/alex-pricope/festival-results/docs"

	"github.com/alex-pricope/festival-results/api"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	// Local secrets; absent in lambda
	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf("no .env file loaded: %v", err)
	}

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	logging.BoostrapLogger(viper.GetString("logging.level"), viper.GetBool("logging.json"))

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
