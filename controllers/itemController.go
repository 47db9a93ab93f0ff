package controllers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/YusifQasim/caffe-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemController struct {
	DB        *sql.DB
	UploadDir string
}

func NewItemController(db *sql.DB, uploadDir string) *ItemController {
	return &ItemController{DB: db, UploadDir: uploadDir}
}

// bindItemForm reads the multipart fields shared by item create and update.
func bindItemForm(c *gin.Context) (models.ItemRequest, error) {
	req := models.ItemRequest{Name: c.PostForm("name")}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		return req, errors.New("price must be a number")
	}
	req.Price = price
	if err := validate.Struct(&req); err != nil {
		return req, err
	}
	return req, nil
}

// saveImage stores the uploaded file, when one was attached, under a uuid
// filename and returns the filename. Returns nil when no file was sent.
func (ic *ItemController) saveImage(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(ic.UploadDir, filename)); err != nil {
		return nil, err
	}
	return &filename, nil
}

// CreateItem serves both the public and the admin create route.
func (ic *ItemController) CreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId must be a number"})
			return
		}
		req, err := bindItemForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		imageUrl, err := ic.saveImage(c)
		if err != nil {
			log.Println("Error saving image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		result, err := ic.DB.ExecContext(c.Request.Context(),
			"INSERT INTO items (name, price, category_id, image_url) VALUES (?, ?, ?, ?)",
			req.Name, req.Price, categoryID, imageUrl)
		if err != nil {
			log.Println("Error adding item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		id, err := result.LastInsertId()
		if err != nil {
			log.Println("Error adding item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, models.Item{
			ID:         id,
			Name:       req.Name,
			Price:      req.Price,
			CategoryID: categoryID,
			ImageUrl:   imageUrl,
		})
	}
}

// UpdateItem overwrites image_url with NULL when no replacement image is
// attached. Resubmitting without a file clears the prior image on purpose.
func (ic *ItemController) UpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "itemId must be a number"})
			return
		}
		req, err := bindItemForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		imageUrl, err := ic.saveImage(c)
		if err != nil {
			log.Println("Error saving image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		_, err = ic.DB.ExecContext(c.Request.Context(),
			"UPDATE items SET name = ?, price = ?, image_url = ? WHERE id = ?",
			req.Name, req.Price, imageUrl, itemID)
		if err != nil {
			log.Println("Error updating item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       itemID,
			"name":     req.Name,
			"price":    req.Price,
			"imageUrl": imageUrl,
		})
	}
}

// DeleteItem removes the row only. The backing image file is not deleted and
// order_items referencing the item are left alone.
func (ic *ItemController) DeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "itemId must be a number"})
			return
		}

		result, err := ic.DB.ExecContext(c.Request.Context(),
			"DELETE FROM items WHERE id = ?", itemID)
		if err != nil {
			log.Println("Error removing item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		affected, err := result.RowsAffected()
		if err != nil {
			log.Println("Error removing item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if affected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

func (ic *ItemController) GetItemsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId must be a number"})
			return
		}

		rows, err := ic.DB.QueryContext(c.Request.Context(),
			"SELECT id, name, price, category_id, image_url FROM items WHERE category_id = ?",
			categoryID)
		if err != nil {
			log.Println("Error fetching items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		defer rows.Close()

		items := []models.Item{}
		for rows.Next() {
			var item models.Item
			var imageUrl sql.NullString
			if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.CategoryID, &imageUrl); err != nil {
				log.Println("Error scanning item:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			if imageUrl.Valid {
				item.ImageUrl = &imageUrl.String
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			log.Println("Error fetching items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
