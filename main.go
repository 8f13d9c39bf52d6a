package main

import (
	"log"
	"net/http"

	"scenario2050/internal/config"
	configapp "scenario2050/internal/features/config/application"
	config_http "scenario2050/internal/features/config/presentation/http"
	scenarioapp "scenario2050/internal/features/scenario/application"
	"scenario2050/internal/features/scenario/infrastructure"
	scenario_http "scenario2050/internal/features/scenario/presentation/http"
	speechapp "scenario2050/internal/features/speech/application"
	speech_http "scenario2050/internal/features/speech/presentation/http"
	"scenario2050/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/app_config.yaml"

func main() {
	// Load .env file
	envErr := godotenv.Load()

	env := config.OSEnvironment{}
	configPath := env.Get(config.EnvAppConfigPath)
	if configPath == "" {
		configPath = defaultConfigPath
	}
	appConfig, err := config.NewAppConfigService(configPath, env).LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load app config: %v", err)
	}

	logger, err := logging.New(appConfig.Log.Level, appConfig.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if envErr != nil {
		logger.Info("No .env file found, using environment variables")
	}

	gin.SetMode(appConfig.Server.Mode)
	r := gin.New()
	r.Use(logging.GinMiddleware(logger), gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Initialize services
	narrativeService := scenarioapp.NewNarrativeService(infrastructure.NewAIClientFactory(), env, *appConfig, logger.Named("narrative"))
	speechService := speechapp.NewSpeechService(nil, env, *appConfig, logger.Named("speech"))
	catalogService := configapp.NewCatalogService(env, *appConfig)

	api := r.Group("/api")
	scenario_http.NewScenarioHandler(narrativeService, logger.Named("http")).Register(api)
	speech_http.NewSpeechHandler(speechService).Register(api)

	// Config API routes
	configGroup := api.Group("/config")
	{
		configGroup.GET("/app", config_http.NewAppConfigHandler(catalogService).GetAppConfigHandler)
	}

	logger.Info("listening",
		zap.String("address", appConfig.Server.Address),
		zap.Bool("speech_available", speechService.Available()))
	if err := r.Run(appConfig.Server.Address); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
