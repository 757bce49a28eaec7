package domain

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageFailedGetRecommendations  = "failed to retrieve recommendations"
)

type (
	RecommendedProductResponse struct {
		ProductID       string  `json:"product_id"`
		Name            string  `json:"name"`
		Brand           string  `json:"brand"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		Stock           int     `json:"stock"`
		ImageURL        string  `json:"image_url,omitempty"`
		CaloriesPer100g float64 `json:"calories_per_100g"`
		DailyPortionG   int     `json:"daily_portion_g"`
	}

	RecommendedIngredientResponse struct {
		IngredientID    string  `json:"ingredient_id"`
		Name            string  `json:"name"`
		CaloriesPer100g float64 `json:"calories_per_100g"`
		DailyPortionG   int     `json:"daily_portion_g"`
	}
)
