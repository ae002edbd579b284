package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,url"`
}

// updateProductRequest carries a partial update; absent fields stay unchanged.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"     validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
}
