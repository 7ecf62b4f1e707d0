package catalogdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"golang.org/x/sync/errgroup"
)

type client struct {
	files fs.FS
	label string
}

// Config configures where catalog files are read from. FS wins over Dir.
type Config struct {
	Dir string
	FS  fs.FS
}

// New creates a catalog file client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("catalog data config is required")
	}

	if cfg.FS != nil {
		return &client{files: cfg.FS, label: "embedded"}, nil
	}
	if cfg.Dir == "" {
		return nil, apperrors.InvalidArgument("catalog directory is required")
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeNotFound, fmt.Sprintf("catalog directory %s", cfg.Dir))
	}
	if !info.IsDir() {
		return nil, apperrors.InvalidArgumentf("catalog path %s is not a directory", cfg.Dir)
	}

	return &client{files: os.DirFS(cfg.Dir), label: cfg.Dir}, nil
}

// Load reads the species, move and type chart files in parallel and builds a
// validated catalog from them
func (c *client) Load(ctx context.Context) (*catalog.Catalog, error) {
	var (
		species []*catalog.Species
		moves   []*catalog.Move
		chart   typechart.Chart
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.readJSON(ctx, SpeciesFile, &species) })
	g.Go(func() error { return c.readJSON(ctx, MovesFile, &moves) })
	g.Go(func() error { return c.readJSON(ctx, TypeChartFile, &chart) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat, err := catalog.New(species, moves, &chart)
	if err != nil {
		return nil, apperrors.Wrapf(err, "invalid catalog in %s", c.label)
	}

	log.Printf("CatalogData: Loaded %d species, %d moves and %d types from %s",
		len(species), len(moves), len(chart.Types), c.label)

	return cat, nil
}

func (c *client) readJSON(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := fs.ReadFile(c.files, name)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeNotFound, fmt.Sprintf("failed to read %s", name))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		snippet := string(raw)
		if len(snippet) > 80 {
			snippet = snippet[:80]
		}
		return apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument,
			fmt.Sprintf("failed to parse %s (starts with %q)", name, snippet))
	}

	return nil
}
