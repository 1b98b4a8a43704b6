// Command indexer entrena el índice KNN de géneros offline y lo guarda como artefacto.
// El servidor solo lo carga; nunca entrena.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/Yhabib05/movie-recommender/internal/app"
	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/config"
	"github.com/Yhabib05/movie-recommender/internal/db"
	"github.com/Yhabib05/movie-recommender/internal/knn"
	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/models"
)

func main() {
	// los defaults salen de la misma config que usa el servidor (.env, CONFIG_PATH, entorno)
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("configuración inválida")
	}

	source := flag.String("source", cfg.CatalogSource, "Fuente del catálogo: csv | mongo")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "Ruta a movies.csv (source=csv)")
	mongoURI := flag.String("mongo-uri", cfg.MongoURI, "URI de MongoDB (source=mongo)")
	mongoDB := flag.String("mongo-db", cfg.MongoDB, "Base de datos de MongoDB")
	metric := flag.String("metric", string(knn.Minkowski), "Métrica: minkowski | euclidean | manhattan | cosine | jaccard")
	out := flag.String("out", cfg.IndexPath, "Archivo de salida (.xz para comprimir)")
	flag.Parse()

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	m, err := knn.ParseMetric(*metric)
	if err != nil {
		logging.Fatal().Err(err).Msg("métrica inválida")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	movies, err := loadMovies(ctx, *source, *catalogPath, *mongoURI, *mongoDB)
	if err != nil {
		logging.Fatal().Err(err).Str("source", *source).Msg("no se pudo leer el catálogo")
	}
	loaded := time.Since(start)

	art, err := buildIndex(movies, m, *out)
	if err != nil {
		logging.Fatal().Err(err).Str("out", *out).Msg("no se pudo entrenar el índice")
	}

	st, err := os.Stat(*out)
	if err != nil {
		logging.Fatal().Err(err).Msg("stat del índice")
	}

	logging.Info().Str("model_id", art.ModelID).Str("out", *out).Msg("índice entrenado")
	printSummary(os.Stdout, art, *source, len(movies), st.Size(), loaded, time.Since(start))
}

func loadMovies(ctx context.Context, source, path, mongoURI, mongoDB string) ([]models.Movie, error) {
	if source != config.SourceMongo {
		return app.LoadMovies(ctx, source, path, nil)
	}
	client, mdb, err := db.Connect(ctx, mongoURI, mongoDB)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	return app.LoadMovies(ctx, source, path, mdb)
}

// buildIndex codifica el catálogo, entrena el artefacto y lo escribe en out.
func buildIndex(movies []models.Movie, metric knn.Metric, out string) (*knn.Artifact, error) {
	features := catalog.Encode(movies)
	art, err := knn.Fit(features.Columns, features.Rows(), metric)
	if err != nil {
		return nil, fmt.Errorf("fit index: %w", err)
	}
	if err := knn.SaveFile(out, art); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}
	return art, nil
}

func printSummary(w io.Writer, art *knn.Artifact, source string, movies int, size int64, loaded, total time.Duration) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"model id", "source", "movies", "genres", "metric", "artifact size", "load", "total"})
	tw.Append([]string{
		art.ModelID,
		source,
		humanize.Comma(int64(movies)),
		fmt.Sprintf("%d", len(art.Features)),
		string(art.Metric),
		humanize.Bytes(uint64(size)),
		loaded.Round(time.Millisecond).String(),
		total.Round(time.Millisecond).String(),
	})
	tw.Render()

	fmt.Fprintf(w, "genres: %s\n", strings.Join(art.Features, ", "))
}
