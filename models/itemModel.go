package models

// ImageUrl is nil when no image was attached on create/update; it maps to a
// NULL image_url column.
type Item struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"categoryId"`
	ImageUrl   *string `json:"imageUrl"`
}

// ItemRequest carries the multipart form fields of the item endpoints. The
// optional image file travels separately.
type ItemRequest struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}
