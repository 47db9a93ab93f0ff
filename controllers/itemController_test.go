package controllers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/YusifQasim/caffe-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func newItemRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	router := newTestRouter()
	items := NewItemController(db, t.TempDir())
	router.GET("/api/items/:categoryId", items.GetItemsByCategory())
	router.POST("/api/items/:categoryId", items.CreateItem())
	router.PUT("/api/items/:itemId", items.UpdateItem())
	router.DELETE("/api/items/:itemId", items.DeleteItem())
	return router, mock, db
}

func itemForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestCreateItemWithoutImage(t *testing.T) {
	c := qt.New(t)
	router, mock, db := newItemRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO items (name, price, category_id, image_url) VALUES (?, ?, ?, ?)")).
		WithArgs("Latte", 3.5, int64(2), nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	body, contentType := itemForm(t, map[string]string{"name": "Latte", "price": "3.5"})
	req := httptest.NewRequest(http.MethodPost, "/api/items/2", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusCreated)

	var item models.Item
	c.Assert(json.Unmarshal(w.Body.Bytes(), &item), qt.IsNil)
	c.Assert(item.ID, qt.Equals, int64(11))
	c.Assert(item.Name, qt.Equals, "Latte")
	c.Assert(item.Price, qt.Equals, 3.5)
	c.Assert(item.CategoryID, qt.Equals, int64(2))
	c.Assert(item.ImageUrl, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestCreateItemBadPrice(t *testing.T) {
	c := qt.New(t)
	router, mock, db := newItemRouter(t)
	defer db.Close()

	body, contentType := itemForm(t, map[string]string{"name": "Latte", "price": "cheap"})
	req := httptest.NewRequest(http.MethodPost, "/api/items/2", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestUpdateItemWithoutImageClearsImageUrl(t *testing.T) {
	c := qt.New(t)
	router, mock, db := newItemRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE items SET name = ?, price = ?, image_url = ? WHERE id = ?")).
		WithArgs("Flat White", 4.0, nil, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, contentType := itemForm(t, map[string]string{"name": "Flat White", "price": "4.0"})
	req := httptest.NewRequest(http.MethodPut, "/api/items/11", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var resp map[string]interface{}
	c.Assert(json.Unmarshal(w.Body.Bytes(), &resp), qt.IsNil)
	c.Assert(resp["imageUrl"], qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestDeleteItemNotFound(t *testing.T) {
	c := qt.New(t)
	router, mock, db := newItemRouter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := perform(router, http.MethodDelete, "/api/items/42")
	c.Assert(w.Code, qt.Equals, http.StatusNotFound)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestGetItemsByCategory(t *testing.T) {
	c := qt.New(t)
	router, mock, db := newItemRouter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, price, category_id, image_url FROM items WHERE category_id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "price", "category_id", "image_url"}).
			AddRow(11, "Latte", 3.5, 2, "latte.png").
			AddRow(12, "Espresso", 2.0, 2, nil))

	w := perform(router, http.MethodGet, "/api/items/2")
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var items []models.Item
	c.Assert(json.Unmarshal(w.Body.Bytes(), &items), qt.IsNil)
	c.Assert(items, qt.HasLen, 2)
	c.Assert(*items[0].ImageUrl, qt.Equals, "latte.png")
	c.Assert(items[1].ImageUrl, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}
