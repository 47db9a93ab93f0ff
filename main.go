package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/YusifQasim/caffe-backend/config"
	"github.com/YusifQasim/caffe-backend/controllers"
	"github.com/YusifQasim/caffe-backend/database"
	middleware "github.com/YusifQasim/caffe-backend/middleware"
	routes "github.com/YusifQasim/caffe-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to the MySQL database.")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Error creating upload directory: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Enable CORS
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Serve uploaded item images
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})

	notifier := controllers.NewNotifier()
	auth := controllers.NewAuthController(cfg)
	categories := controllers.NewCategoryController(db)
	items := controllers.NewItemController(db, cfg.UploadDir)
	orders := controllers.NewOrderController(db, notifier)

	admin := router.Group("/api/admin")
	admin.Use(middleware.Authentication(cfg.JWTSecret))

	// API routes
	routes.AuthRoutes(router, auth)
	routes.CategoryRoutes(router, categories)
	routes.ItemRoutes(router, admin, items)
	routes.OrderRoutes(router, orders)
	routes.WsRoutes(router, notifier)

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
