package main

import (
	"fmt"
	"os"

	"fintrack/config"
	"fintrack/models"
	"fintrack/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.Migrate(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.LoadCategorySeeds("config/seeds/categories.yml"); err != nil {
		config.Logger.Warnf("category seeds not loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter()
	// running
	r.Listen(":" + port)
}
