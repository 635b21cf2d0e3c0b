package dto

// MoveProductRequest moves a product to an explicit 1-based display position.
type MoveProductRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Position  int    `json:"position"  validate:"required,min=1"`
}

// RowOrderResponse is the reconciled display order, first to last.
type RowOrderResponse struct {
	Order []string `json:"order"`
}
