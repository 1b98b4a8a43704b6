// internal/repository/movie_repo.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yhabib05/movie-recommender/internal/models"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection("movies")}
}

// All trae el catálogo completo ordenado por movieId; ese orden define las filas del índice,
// así que el indexer y el servidor tienen que leer de la misma fuente.
func (r *MovieRepository) All(ctx context.Context) ([]models.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "movieId", Value: 1}}).
		SetProjection(bson.M{"movieId": 1, "title": 1, "genres": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Movie
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		if m.Genres == nil {
			m.Genres = []string{}
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
