package models

import "time"

// IndexSummary resume el catálogo y el índice KNN cargados al arrancar.
type IndexSummary struct {
	ModelID        string    `json:"modelId"`
	Metric         string    `json:"metric"`
	K              int       `json:"k"`
	CatalogRows    int       `json:"catalogRows"`
	IndexRows      int       `json:"indexRows"`
	FeatureWidth   int       `json:"featureWidth"`
	Genres         []string  `json:"genres"`
	DuplicateTitle int       `json:"duplicateTitles"`
	TrainedAt      time.Time `json:"trainedAt"`
	CatalogSource  string    `json:"catalogSource"`
}
