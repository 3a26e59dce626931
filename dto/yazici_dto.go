package dto

type YaziciPozisyonDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type YaziciAlanDTO struct {
	FieldID  string            `json:"fieldId" binding:"required"`
	Label    string            `json:"label"`
	Position YaziciPozisyonDTO `json:"position"`
	IsStatic bool              `json:"isStatic"`
}

type SaveYaziciAyarDTO struct {
	Alanlar []YaziciAlanDTO `json:"alanlar" binding:"required,dive"`
}
