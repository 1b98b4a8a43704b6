package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendRequest es el body de POST /getRecommendations.
// Puntero para distinguir "campo ausente" (422) de "" (404).
type RecommendRequest struct {
	MovieName *string `json:"movie_name" validate:"required"`
}

// RecItem es un elemento de la respuesta: {title, genres} con genres unidos por "|".
type RecItem struct {
	Title  string `json:"title" bson:"title"`
	Genres string `json:"genres" bson:"genres"`
}

// ScoredRec es un RecItem con su distancia al vector consultado.
type ScoredRec struct {
	RecItem  `bson:",inline"`
	MovieID  int     `json:"movieId" bson:"movieId"`
	Distance float64 `json:"distance" bson:"distance"`
}

// Recommendation es el historial guardado en Mongo (colección recommendations).
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query     string             `bson:"query"         json:"query"`
	ModelID   string             `bson:"modelId"       json:"modelId"`
	Metric    string             `bson:"metric"        json:"metric"`
	K         int                `bson:"k"             json:"k"`
	Items     []ScoredRec        `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// ErrorResponse es el formato de error para el cliente: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
