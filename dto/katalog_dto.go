package dto

type CreateKatalogDTO struct {
	Ad string `json:"ad" binding:"required,max=100"`
}

type CreateBayiDTO struct {
	Ad       string `json:"ad" binding:"required,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}
