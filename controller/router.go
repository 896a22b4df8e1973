package controller

import (
	"net/http"

	"goose-bumps-backend/controller/handler"
	"goose-bumps-backend/controller/respond"
	"goose-bumps-backend/database"
	_ "goose-bumps-backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRouter assemble the HTTP surface: user and progress endpoints, the
// NFT reward endpoints, their CORS preflight siblings and the Swagger UI.
func SetupRouter(store *database.UserStore, solana handler.SolanaMinter, web3 handler.NFTTransferrer, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(respond.RequestLogMiddleware(log))
	r.Use(respond.CORSMiddleware())

	userHandler := handler.NewUserHandler(store, log)
	nftHandler := handler.NewNFTHandler(store, solana, web3, log)

	r.POST("/user", userHandler.CreateUser)
	r.GET("/user/:userId", userHandler.GetUser)
	r.PUT("/userprogress", userHandler.PutUserProgress)
	r.POST("/mint-nft", nftHandler.MintNFT)
	r.POST("/transfer-nft", nftHandler.TransferNFT)

	// CORS preflight siblings for the state-changing routes.
	preflight := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.OPTIONS("/user", preflight)
	r.OPTIONS("/userprogress", preflight)
	r.OPTIONS("/mint-nft", preflight)
	r.OPTIONS("/transfer-nft", preflight)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "goose-bumps-backend",
		})
	})

	// Swagger documentation
	r.GET("/swagger-ui/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
