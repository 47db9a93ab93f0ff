package routes

import (
	"github.com/YusifQasim/caffe-backend/controllers"

	"github.com/gin-gonic/gin"
)

func ItemRoutes(incomingRoutes *gin.Engine, admin *gin.RouterGroup, items *controllers.ItemController) {
	incomingRoutes.GET("/api/items/:categoryId", items.GetItemsByCategory())
	// TODO: product decision pending on whether this public create route should
	// exist at all or only the token-gated admin one below.
	incomingRoutes.POST("/api/items/:categoryId", items.CreateItem())
	incomingRoutes.PUT("/api/items/:itemId", items.UpdateItem())
	incomingRoutes.DELETE("/api/items/:itemId", items.DeleteItem())

	admin.POST("/items/:categoryId", items.CreateItem())
}
