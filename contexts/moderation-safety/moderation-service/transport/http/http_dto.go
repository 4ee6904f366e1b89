package http

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Status    string    `json:"status"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// ProductDTO is the moderation view of a product. Unlike the public
// catalog it exposes soft-deleted entries and their delete timestamp.
type ProductDTO struct {
	ProductID   string  `json:"product_id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description,omitempty"`
	CoverURL    string  `json:"cover_url"`
	OwnerID     string  `json:"owner_id,omitempty"`
	Cloneable   bool    `json:"cloneable"`
	LikesCount  int64   `json:"likes_count"`
	CreatedAt   string  `json:"created_at"`
	DeletedAt   *string `json:"deleted_at,omitempty"`
}

// UpdateProductRequest is a merge-patch: absent fields keep the stored
// value, present fields overwrite it.
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
	Cloneable   *bool   `json:"cloneable"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Author, validation.Length(0, 200)),
	)
}

type UpdateProductResponse struct {
	Status string `json:"status"`
	Data   struct {
		Product ProductDTO `json:"product"`
	} `json:"data"`
}

type DeleteProductResponse struct {
	Status string `json:"status"`
	Data   struct {
		ProductID string `json:"product_id"`
		DeletedAt string `json:"deleted_at"`
	} `json:"data"`
}

type RestoreProductResponse struct {
	Status string `json:"status"`
	Data   struct {
		ProductID string `json:"product_id"`
	} `json:"data"`
}

type RestoreAllProductsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Restored int `json:"restored"`
	} `json:"data"`
}

type UserDTO struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

type ListUsersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Users []UserDTO `json:"users"`
	} `json:"data"`
}

type DeleteUserResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID          string `json:"user_id"`
		ProductsDeleted int    `json:"products_deleted"`
		RemovedAt       string `json:"removed_at"`
	} `json:"data"`
}
