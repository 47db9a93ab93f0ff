package controllers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/YusifQasim/caffe-backend/database"
	"github.com/YusifQasim/caffe-backend/models"

	"github.com/gin-gonic/gin"
)

var errOrderNotFound = errors.New("order not found")

const listOrdersQuery = `SELECT orders.id,
       orders.table_number,
       orders.accepted,
       orders.created_at,
       GROUP_CONCAT(items.name) AS item_names,
       SUM(items.price * order_items.quantity) AS total_price
FROM orders
JOIN order_items ON orders.id = order_items.order_id
JOIN items ON order_items.item_id = items.id
GROUP BY orders.id, orders.table_number, orders.accepted, orders.created_at
ORDER BY orders.created_at DESC`

type OrderController struct {
	DB       *sql.DB
	Notifier *Notifier
}

func NewOrderController(db *sql.DB, notifier *Notifier) *OrderController {
	return &OrderController{DB: db, Notifier: notifier}
}

// CreateOrder inserts the order row and its line items in one transaction.
// An empty items slice is a valid order: the batched insert is skipped.
func (oc *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.OrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		var orderID int64
		err := database.WithTransaction(ctx, oc.DB, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx,
				"INSERT INTO orders (table_number) VALUES (?)", req.TableNumber)
			if err != nil {
				return err
			}
			orderID, err = result.LastInsertId()
			if err != nil {
				return err
			}
			return insertOrderLines(ctx, tx, orderID, req.Items)
		})
		if err != nil {
			log.Println("Error adding order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		order := gin.H{"id": orderID, "tableNumber": req.TableNumber, "items": req.Items}
		oc.Notifier.Broadcast("newOrder", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders lists every order that has at least one line item, newest first,
// with its item names and derived total price.
func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := oc.DB.QueryContext(c.Request.Context(), listOrdersQuery)
		if err != nil {
			log.Println("Error fetching orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		defer rows.Close()

		orders := []models.OrderSummary{}
		for rows.Next() {
			var order models.OrderSummary
			var itemNames string
			if err := rows.Scan(&order.ID, &order.TableNumber, &order.Accepted,
				&order.CreatedAt, &itemNames, &order.TotalPrice); err != nil {
				log.Println("Error scanning order:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			order.Items = strings.Split(itemNames, ",")
			orders = append(orders, order)
		}
		if err := rows.Err(); err != nil {
			log.Println("Error fetching orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// AcceptOrder flips accepted to true. Reapplying has no further effect, so
// the affected-row count is deliberately not inspected (MySQL reports zero
// for a no-op update on an existing row).
func (oc *OrderController) AcceptOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be a number"})
			return
		}

		_, err = oc.DB.ExecContext(c.Request.Context(),
			"UPDATE orders SET accepted = TRUE WHERE id = ?", orderID)
		if err != nil {
			log.Println("Error accepting order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		oc.Notifier.Broadcast("orderAccepted", gin.H{"id": orderID})
		c.JSON(http.StatusOK, gin.H{"message": "Order accepted"})
	}
}

// DeleteOrder removes the order and its line items in one transaction so no
// orphaned order_items rows survive.
func (oc *OrderController) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be a number"})
			return
		}

		ctx := c.Request.Context()
		err = database.WithTransaction(ctx, oc.DB, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM order_items WHERE order_id = ?", orderID); err != nil {
				return err
			}
			result, err := tx.ExecContext(ctx,
				"DELETE FROM orders WHERE id = ?", orderID)
			if err != nil {
				return err
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				return errOrderNotFound
			}
			return nil
		})
		if errors.Is(err, errOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Println("Error removing order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order removed"})
	}
}

// EditOrder updates the table number and merges the submitted line items into
// the existing ones, summing quantities per item. The load/delete/reinsert
// sequence runs inside one transaction with the existing rows locked, so a
// failure never leaves the order partially rewritten and concurrent edits of
// the same order serialize.
func (oc *OrderController) EditOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be a number"})
			return
		}
		var req models.OrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		var merged []models.OrderLine
		err = database.WithTransaction(ctx, oc.DB, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx,
				"UPDATE orders SET table_number = ? WHERE id = ?",
				req.TableNumber, orderID); err != nil {
				return err
			}

			rows, err := tx.QueryContext(ctx,
				"SELECT item_id, quantity FROM order_items WHERE order_id = ? FOR UPDATE",
				orderID)
			if err != nil {
				return err
			}
			defer rows.Close()

			existing := []models.OrderLine{}
			for rows.Next() {
				var line models.OrderLine
				if err := rows.Scan(&line.ID, &line.Quantity); err != nil {
					return err
				}
				existing = append(existing, line)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			rows.Close()

			merged = mergeLines(existing, req.Items)

			if _, err := tx.ExecContext(ctx,
				"DELETE FROM order_items WHERE order_id = ?", orderID); err != nil {
				return err
			}
			return insertOrderLines(ctx, tx, orderID, merged)
		})
		if err != nil {
			log.Println("Error editing order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": orderID, "tableNumber": req.TableNumber, "items": merged})
	}
}

// mergeLines folds submitted lines into the existing ones: quantities for the
// same item id accumulate, and the result carries at most one line per item.
// Existing lines keep their position; new items append in submission order.
func mergeLines(existing, submitted []models.OrderLine) []models.OrderLine {
	quantities := make(map[int64]int64, len(existing)+len(submitted))
	order := make([]int64, 0, len(existing)+len(submitted))

	for _, line := range existing {
		if _, ok := quantities[line.ID]; !ok {
			order = append(order, line.ID)
		}
		quantities[line.ID] += line.Quantity
	}
	for _, line := range submitted {
		if _, ok := quantities[line.ID]; !ok {
			order = append(order, line.ID)
		}
		quantities[line.ID] += line.Quantity
	}

	merged := make([]models.OrderLine, 0, len(order))
	for _, id := range order {
		merged = append(merged, models.OrderLine{ID: id, Quantity: quantities[id]})
	}
	return merged
}

// insertOrderLines batch-inserts the lines for an order. A zero-length batch
// is a no-op, not an error.
func insertOrderLines(ctx context.Context, tx *sql.Tx, orderID int64, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	placeholders := make([]string, 0, len(lines))
	args := make([]interface{}, 0, len(lines)*3)
	for _, line := range lines {
		placeholders = append(placeholders, "(?, ?, ?)")
		args = append(args, orderID, line.ID, line.Quantity)
	}
	query := "INSERT INTO order_items (order_id, item_id, quantity) VALUES " +
		strings.Join(placeholders, ", ")
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
