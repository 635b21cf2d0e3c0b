package dto

type CreateFieldLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

type FieldLocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
