package api

import (
	"net/http"

	"splitlog/internal/config"
	"splitlog/internal/export"
	"splitlog/internal/storage"
	"splitlog/internal/store"
	"splitlog/internal/syncsheet"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stores bundles the five collection stores handed to the route setup.
type Stores struct {
	Exercises *store.ExerciseStore
	Program   *store.ProgramStore
	Sessions  *store.SessionStore
	Metrics   *store.MetricStore
	Timer     *store.TimerStore
}

// SetupRoutes wires every handler onto the router.
func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	stores Stores,
	backups *export.BackupService,
	adapter *syncsheet.Adapter,
	tokens *syncsheet.TokenCache,
	archive storage.ArchiveStorage,
) {
	formatter := export.NewFormatter(stores.Exercises, stores.Program)

	authHandler := NewAuthHandler(cfg.JWT, cfg.Auth.PasswordHash)
	exerciseHandler := NewExerciseHandler(stores.Exercises)
	programHandler := NewProgramHandler(stores.Program)
	sessionHandler := NewSessionHandler(stores.Sessions, stores.Program)
	bodyHandler := NewBodyHandler(stores.Metrics)
	timerHandler := NewTimerHandler(stores.Timer)
	backupHandler := NewBackupHandler(formatter, backups, stores.Sessions, archive)
	syncHandler := NewSyncHandler(adapter, tokens, stores.Sessions)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	apiV1.POST("/auth/login", authHandler.Login)

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(cfg.JWT.Secret))
	{
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		programGroup := protected.Group("/program")
		{
			programGroup.GET("", programHandler.GetProgram)
			programGroup.PUT("/days/:day/label", programHandler.SetDayLabel)
			programGroup.POST("/days/:day/slots", programHandler.AddSlot)
			programGroup.PUT("/days/:day/slots/:slotId", programHandler.AssignSlot)
			programGroup.DELETE("/days/:day/slots/:slotId", programHandler.RemoveSlot)
		}

		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("", sessionHandler.ListSessions)
			sessionGroup.POST("/open", sessionHandler.OpenSession)
			sessionGroup.GET("/completed-dates", sessionHandler.CompletedDates)
			sessionGroup.GET("/current-day", sessionHandler.GetCurrentDay)
			sessionGroup.PUT("/current-day", sessionHandler.SetCurrentDay)
			sessionGroup.POST("/:id/sets", sessionHandler.AddSet)
			sessionGroup.DELETE("/:id/slots/:slotId/sets/:setId", sessionHandler.RemoveSet)
			sessionGroup.POST("/:id/complete", sessionHandler.Complete)
			sessionGroup.POST("/:id/uncomplete", sessionHandler.Uncomplete)
			sessionGroup.POST("/delete", sessionHandler.DeleteSessions)
			sessionGroup.POST("/clear", sessionHandler.ClearSessions)
		}

		bodyGroup := protected.Group("/body")
		{
			bodyGroup.GET("", bodyHandler.ListMetrics)
			bodyGroup.POST("", bodyHandler.AddMetric)
			bodyGroup.DELETE("/:id", bodyHandler.DeleteMetric)
			bodyGroup.POST("/clear", bodyHandler.ClearMetrics)
		}

		timerGroup := protected.Group("/timer")
		{
			timerGroup.GET("", timerHandler.GetTimer)
			timerGroup.PUT("", timerHandler.SetTimer)
		}

		protected.GET("/export/text", backupHandler.ExportText)

		backupGroup := protected.Group("/backup")
		{
			backupGroup.GET("", backupHandler.ExportBackup)
			backupGroup.POST("", backupHandler.ImportBackup)
			backupGroup.POST("/archive", backupHandler.UploadArchive)
			backupGroup.POST("/archive/restore", backupHandler.RestoreArchive)
		}

		syncGroup := protected.Group("/sync")
		{
			syncGroup.POST("/connect", syncHandler.Connect)
			syncGroup.POST("/disconnect", syncHandler.Disconnect)
			syncGroup.GET("/status", syncHandler.Status)
			syncGroup.POST("/push", syncHandler.PushAll)
			syncGroup.POST("/pull", syncHandler.PullAll)
			syncGroup.POST("/sessions/:id/push", syncHandler.PushSession)
			syncGroup.POST("/sessions/delete", syncHandler.DeleteRemoteSessions)
		}
	}
}
