package models

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}
