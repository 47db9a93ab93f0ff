package routes

import (
	"github.com/YusifQasim/caffe-backend/controllers"

	"github.com/gin-gonic/gin"
)

func WsRoutes(incomingRoutes *gin.Engine, notifier *controllers.Notifier) {
	incomingRoutes.GET("/ws", notifier.Handle())
}
