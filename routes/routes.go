package routes

import (
	"fmt"

	"github.com/Bipul-Dubey/loyalty-predictor/handlers"
	"github.com/Bipul-Dubey/loyalty-predictor/middleware"
	"github.com/Bipul-Dubey/loyalty-predictor/views"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(hm *handlers.HandlerManager, allowedOrigins []string, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Server-rendered form
	r.GET("/", hm.FormHandler.Show)
	r.POST("/", hm.FormHandler.Submit)

	api := r.Group("/api/v1")
	api.Use(middleware.CORS(allowedOrigins))
	{
		api.POST("/predict", hm.PredictHandler.Predict)
		// Preflight only; the CORS middleware answers it.
		api.OPTIONS("/predict", func(c *gin.Context) {})
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "loyalty",
		})
	})

	return r, nil
}
