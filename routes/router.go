package routes

import (
	"net/http"
	"time"

	"github.com/Kariqs/shopcart-api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Keep JSON numbers as json.Number so item coercion sees the literal.
func init() {
	binding.EnableDecoderUseNumber = true
}

// NewRouter builds the engine with middleware and every route registered.
// An empty origin list, or one containing "*", allows any origin.
func NewRouter(corsOrigins []string) *gin.Engine {
	server := gin.New()
	server.HandleMethodNotAllowed = true
	server.Use(middlewares.RequestID(), middlewares.RequestLogger(), gin.Recovery())
	server.Use(cors.New(corsConfig(corsOrigins)))
	server.Use(middlewares.RequireJSON())

	server.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Not Found", "error": "no route for " + ctx.Request.URL.Path})
	})
	server.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed", "error": ctx.Request.Method + " not allowed on " + ctx.Request.URL.Path})
	})

	DefaultRoutes(server)
	ShopcartRoutes(server)
	ItemRoutes(server)
	return server
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Location", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	return config
}
