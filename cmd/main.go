package main

import (
	"backend/config"
	"backend/logger"
	"backend/routes"
)

func main() {
	logger.Init()
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Error("Server failed", "error", err)
	}
}
