package http

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

type ProductDTO struct {
	ProductID   string `json:"product_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	CoverURL    string `json:"cover_url"`
	OwnerID     string `json:"owner_id,omitempty"`
	Cloneable   bool   `json:"cloneable"`
	LikesCount  int64  `json:"likes_count"`
	CreatedAt   string `json:"created_at"`
}

type ListProductsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Products []ProductDTO `json:"products"`
	} `json:"data"`
}

type GetProductResponse struct {
	Status string `json:"status"`
	Data   struct {
		Product ProductDTO `json:"product"`
	} `json:"data"`
}

type CreateProductRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	Cloneable   bool   `json:"cloneable"`
}

type CreateProductResponse struct {
	Status string `json:"status"`
	Data   struct {
		ProductID string `json:"product_id"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
}

type LikeResponse struct {
	Status string `json:"status"`
	Data   struct {
		ProductID string `json:"product_id"`
		Likes     int64  `json:"likes"`
	} `json:"data"`
}
