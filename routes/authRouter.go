package routes

import (
	"github.com/YusifQasim/caffe-backend/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(incomingRoutes *gin.Engine, auth *controllers.AuthController) {
	incomingRoutes.POST("/api/login", auth.Login())
}
