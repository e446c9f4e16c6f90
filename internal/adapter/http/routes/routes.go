package routes

import (
	"log"
	"strconv"

	_ "kantidad/docs" // This will be auto-generated
	"kantidad/internal/adapter/http/handlers"
	repository2 "kantidad/internal/adapter/persistence/repository"
	"kantidad/internal/catalog"
	"kantidad/internal/infrastructure/database"
	"kantidad/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	calcRunRepo := repository2.NewCalcRunDynamoRepository(ddb)

	payItemCatalog := catalog.NewDefault()

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	calcRunUseCase := usecase.NewCalcRunUseCase(projectRepo, calcRunRepo, payItemCatalog)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	calcRunHandler := handlers.NewCalcRunHandler(calcRunUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTakeoffRoutes(v1, projectHandler, calcRunHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
