package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
