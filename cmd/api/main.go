package main

import (
	"context"
	"net/http"

	_ "reprojection-api/docs"
	"reprojection-api/internal/config"
	"reprojection-api/internal/handler"
	"reprojection-api/internal/models"
	"reprojection-api/internal/projection"
	"reprojection-api/internal/repository"
	"reprojection-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Coordinate Conversion API
//	@version		1.0
//	@description	Converts coordinate columns of tabular datasets between coordinate reference systems.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse log level")
	}
	zerolog.SetGlobalLevel(level)

	// The self-test catches a missing PROJ installation at startup instead
	// of on the first request.
	engine := projection.NewEngine()
	if err := engine.Check(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize projection engine")
	}

	repo, err := repository.NewRepository(config.UploadDir, config.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize artifact storage")
	}

	defaults := models.ConversionDefaults{
		XField:    config.XField,
		YField:    config.YField,
		SourceCRS: config.SourceCRS,
		TargetCRS: config.TargetCRS,
	}

	// Initialize layers
	validator := service.NewValidator(config.ValidateRange)
	convertService := service.NewConvertService(engine, validator)
	uploadService := service.NewUploadService(convertService, repo, defaults)

	convertHandler := handler.NewConvertHandler(convertService, defaults)
	uploadHandler := handler.NewUploadHandler(uploadService, defaults, config.MaxUploadMB)
	downloadHandler := handler.NewDownloadHandler(uploadService)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", uploadHandler.Index)
	r.POST("/convert", uploadHandler.Convert)
	r.GET("/download/:filename", downloadHandler.Download)
	r.POST("/api/v1/convert", convertHandler.Convert)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	r.Run(config.ServerAddress)
}
