package catalogdata

//go:generate mockgen -destination=mock/mock_client.go -package=mockcatalogdata . Client

import (
	"context"

	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
)

// File names read from the catalog directory
const (
	SpeciesFile   = "species.json"
	MovesFile     = "moves.json"
	TypeChartFile = "typeChart.json"
)

// Client loads reference data for battles
type Client interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}
