package controllers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/YusifQasim/caffe-backend/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	DB *sql.DB
}

func NewCategoryController(db *sql.DB) *CategoryController {
	return &CategoryController{DB: db}
}

func (cc *CategoryController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := cc.DB.QueryContext(c.Request.Context(), "SELECT id, name FROM categories")
		if err != nil {
			log.Println("Error fetching categories:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		defer rows.Close()

		categories := []models.Category{}
		for rows.Next() {
			var category models.Category
			if err := rows.Scan(&category.ID, &category.Name); err != nil {
				log.Println("Error scanning category:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			categories = append(categories, category)
		}
		if err := rows.Err(); err != nil {
			log.Println("Error fetching categories:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (cc *CategoryController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CategoryRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := cc.DB.ExecContext(c.Request.Context(),
			"INSERT INTO categories (name) VALUES (?)", req.Name)
		if err != nil {
			log.Println("Error adding category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		id, err := result.LastInsertId()
		if err != nil {
			log.Println("Error adding category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, models.Category{ID: id, Name: req.Name})
	}
}

func (cc *CategoryController) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId must be a number"})
			return
		}
		var req models.CategoryRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		_, err = cc.DB.ExecContext(c.Request.Context(),
			"UPDATE categories SET name = ? WHERE id = ?", req.Name, categoryID)
		if err != nil {
			log.Println("Error updating category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, models.Category{ID: categoryID, Name: req.Name})
	}
}

func (cc *CategoryController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId must be a number"})
			return
		}

		result, err := cc.DB.ExecContext(c.Request.Context(),
			"DELETE FROM categories WHERE id = ?", categoryID)
		if err != nil {
			log.Println("Error removing category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		affected, err := result.RowsAffected()
		if err != nil {
			log.Println("Error removing category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if affected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
	}
}
