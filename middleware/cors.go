package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets a browser front end hosted elsewhere call the JSON API.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"X-Request-ID",
	}
	config.ExposeHeaders = []string{"X-Request-ID"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return cors.New(config)
}
