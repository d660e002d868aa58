package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vnkhanh/survey-engine/controllers"
	"github.com/vnkhanh/survey-engine/middleware"
)

type Options struct {
	JWTSecret string
	// Limiter giới hạn số lần gửi phản hồi công khai theo IP; nil là không giới hạn.
	Limiter *middleware.IPRateLimiter
}

func SetupRoutes(r *gin.Engine, ctl *controllers.Controller, opts Options) error {
	if err := controllers.RegisterValidators(); err != nil {
		return err
	}

	r.Use(middleware.Metrics())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", ctl.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctl.Login)
			auth.POST("/google/login", ctl.GoogleLogin)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT(opts.JWTSecret))
		{
			protected.GET("/me", ctl.Me)

			surveys := protected.Group("/surveys")
			{
				surveys.GET("", ctl.ListSurveys)
				surveys.POST("", ctl.CreateSurvey)

				// survey đang chọn, đặt trước /:id cho dễ đọc
				surveys.GET("/current", ctl.GetCurrentSurvey)
				surveys.PUT("/current", ctl.SetCurrentSurvey)
				surveys.POST("/current/questions", ctl.AddQuestion)
				surveys.PUT("/current/questions/reorder", ctl.ReorderQuestions)

				surveys.GET("/:id", ctl.GetSurvey)
				surveys.PUT("/:id", ctl.UpdateSurvey)
				surveys.DELETE("/:id", ctl.DeleteSurvey)
				surveys.GET("/:id/responses", ctl.ListResponses)
				surveys.GET("/:id/dashboard", ctl.GetDashboard)
				surveys.GET("/:id/export", ctl.ExportResponses)
			}

			protected.PUT("/questions/:id", ctl.UpdateQuestion)
			protected.DELETE("/questions/:id", ctl.DeleteQuestion)
		}

		public := api.Group("/public")
		{
			public.GET("/surveys/:id", ctl.GetPublicSurvey)
			submit := []gin.HandlerFunc{ctl.SubmitResponse}
			if opts.Limiter != nil {
				submit = append([]gin.HandlerFunc{middleware.RateLimitByIP(opts.Limiter)}, submit...)
			}
			public.POST("/surveys/:id/responses", submit...)
		}
	}
	return nil
}
