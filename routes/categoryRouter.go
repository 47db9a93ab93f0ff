package routes

import (
	"github.com/YusifQasim/caffe-backend/controllers"

	"github.com/gin-gonic/gin"
)

func CategoryRoutes(incomingRoutes *gin.Engine, categories *controllers.CategoryController) {
	incomingRoutes.GET("/api/categories", categories.GetCategories())
	incomingRoutes.POST("/api/categories", categories.CreateCategory())
	incomingRoutes.PUT("/api/categories/:categoryId", categories.UpdateCategory())
	incomingRoutes.DELETE("/api/categories/:categoryId", categories.DeleteCategory())
}
