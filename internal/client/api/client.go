package api

import "context"

// Client is the API contract with the planting-optimisation backend.
type Client interface {
	// ExchangeToken performs the password-grant credential exchange and
	// returns the access token.
	ExchangeToken(ctx context.Context, username, password string) (string, error)

	// CreateFarm persists a farm record and returns it as read back from the
	// server (including its assigned id).
	CreateFarm(ctx context.Context, token string, req FarmCreateRequest) (FarmRecord, error)

	// GetFarm reads a single farm record by id.
	GetFarm(ctx context.Context, token, id string) (FarmRecord, error)

	// ListFarms reads all farm records owned by the authenticated user.
	ListFarms(ctx context.Context, token string) ([]FarmRecord, error)

	// GetRecommendations fetches the ranked species recommendations for a
	// farm.
	GetRecommendations(ctx context.Context, token, farmID string) (RecommendationsResponse, error)

	// ListSpecies reads the public species catalogue.
	ListSpecies(ctx context.Context) ([]SpeciesRecord, error)
}

// FarmCreateRequest is the POST /farms payload.
type FarmCreateRequest struct {
	RainfallMM          int     `json:"rainfall_mm"`
	TemperatureCelsius  int     `json:"temperature_celsius"`
	ElevationM          int     `json:"elevation_m"`
	PH                  float64 `json:"ph"`
	SoilTextureID       int     `json:"soil_texture_id"`
	AreaHa              float64 `json:"area_ha"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Coastal             bool    `json:"coastal"`
	Riparian            bool    `json:"riparian"`
	NitrogenFixing      bool    `json:"nitrogen_fixing"`
	ShadeTolerant       bool    `json:"shade_tolerant"`
	BankStabilising     bool    `json:"bank_stabilising"`
	Slope               float64 `json:"slope"`
	AgroforestryTypeIDs []int   `json:"agroforestry_type_ids"`
	ExternalID          *int    `json:"external_id"`
}

// SoilTexture is the nested texture object of a farm record.
type SoilTexture struct {
	Name string `json:"name"`
}

// FarmRecord is a farm as read from GET /farms and GET /farms/{id}.
// Numerics are decoded as float64 (their natural JSON carrier) so that the
// textual edit form can be rendered without inventing precision.
type FarmRecord struct {
	ID                 int64       `json:"id"`
	RainfallMM         float64     `json:"rainfall_mm"`
	TemperatureCelsius float64     `json:"temperature_celsius"`
	ElevationM         float64     `json:"elevation_m"`
	PH                 float64     `json:"ph"`
	SoilTexture        SoilTexture `json:"soil_texture"`
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
}

// RecommendationItem is one entry of a recommendations response.
type RecommendationItem struct {
	SpeciesID         int64    `json:"species_id"`
	SpeciesName       string   `json:"species_name"`
	SpeciesCommonName string   `json:"species_common_name"`
	ScoreMCDA         float64  `json:"score_mcda"`
	RankOverall       int      `json:"rank_overall"`
	KeyReasons        []string `json:"key_reasons"`
}

// RecommendationsResponse is the GET /recommendations/{farmId} payload.
type RecommendationsResponse struct {
	FarmID          int64                `json:"farm_id"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// SpeciesRecord is one entry of the public species catalogue.
type SpeciesRecord struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"` // scientific name
	CommonName            string  `json:"common_name"`
	RainfallMMMin         float64 `json:"rainfall_mm_min"`
	RainfallMMMax         float64 `json:"rainfall_mm_max"`
	TemperatureCelsiusMin float64 `json:"temperature_celsius_min"`
	TemperatureCelsiusMax float64 `json:"temperature_celsius_max"`
	ElevationMMin         float64 `json:"elevation_m_min"`
	ElevationMMax         float64 `json:"elevation_m_max"`
	PHMin                 float64 `json:"ph_min"`
	PHMax                 float64 `json:"ph_max"`
	Coastal               bool    `json:"coastal"`
	Riparian              bool    `json:"riparian"`
	NitrogenFixing        bool    `json:"nitrogen_fixing"`
	ShadeTolerant         bool    `json:"shade_tolerant"`
	BankStabilising       bool    `json:"bank_stabilising"`
}
