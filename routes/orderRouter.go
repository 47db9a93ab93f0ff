package routes

import (
	"github.com/YusifQasim/caffe-backend/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, orders *controllers.OrderController) {
	incomingRoutes.POST("/api/orders", orders.CreateOrder())
	incomingRoutes.GET("/api/orders", orders.GetOrders())
	incomingRoutes.PUT("/api/orders/:orderId/accept", orders.AcceptOrder())
	incomingRoutes.PUT("/api/orders/:orderId", orders.EditOrder())
	incomingRoutes.DELETE("/api/orders/:orderId", orders.DeleteOrder())
}
