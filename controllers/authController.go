package controllers

import (
	"net/http"

	"github.com/YusifQasim/caffe-backend/config"
	"github.com/YusifQasim/caffe-backend/helpers"
	"github.com/YusifQasim/caffe-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

type AuthController struct {
	Config config.Config
}

func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{Config: cfg}
}

// Login checks the fixed admin credential pair and issues a bearer token.
func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Username != ac.Config.AdminUsername || req.Password != ac.Config.AdminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := helpers.GenerateToken(req.Username, ac.Config.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
