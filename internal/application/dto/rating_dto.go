package dto

// RateRequest entrada para calificar una tienda (el store va en el path).
type RateRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// RatingResponse salida del upsert de calificación.
type RatingResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
	Rating  int    `json:"rating"`
}

// StatsResponse conteos globales del panel admin.
type StatsResponse struct {
	TotalUsers   int `json:"total_users"`
	TotalStores  int `json:"total_stores"`
	TotalRatings int `json:"total_ratings"`
}
