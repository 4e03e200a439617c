package main

import (
	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func init() {
	initializers.LoadEnv()
	initializers.InitLogger(initializers.AppConfig.LogLevel, initializers.AppConfig.LogPretty)
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	gin.SetMode(initializers.AppConfig.GinMode)

	server := routes.NewRouter(initializers.AppConfig.CorsOrigins)
	addr := ":" + initializers.AppConfig.Port
	log.Info().Str("addr", addr).Msg("Shopcart service starting")
	if err := server.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
