package main

import (
	"context"
	"foodgram/internal/catalog"
	"foodgram/internal/config"
	"foodgram/pkg/logger"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type importFunc func(c catalog.Catalog, ctx context.Context, r io.Reader) (catalog.ImportResult, error)

// loadCommand imports catalog fixtures. Records that already exist are skipped,
// so loading the same file twice is harmless.
func loadCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Loads catalog fixtures from JSON files",
	}
	cmd.AddCommand(
		loadFixtureCommand(cfg, "ingredients", catalog.Catalog.ImportIngredients),
		loadFixtureCommand(cfg, "tags", catalog.Catalog.ImportTags),
	)

	return cmd
}

func loadFixtureCommand(cfg *config.Config, name string, importFn importFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file>...",
		Short: "Loads " + name + " from JSON array files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			c := catalog.New(strg, catalog.Options{BatchSize: cfg.Import.BatchSize})

			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					logger.Fatal(ctx, "could not open fixture", zap.String("path", path), zap.Error(err))
				}

				res, err := importFn(c, ctx, f)
				_ = f.Close()
				if err != nil {
					logger.Fatal(ctx, "could not load fixture", zap.String("path", path), zap.Error(err))
				}
				logger.Info(ctx, "fixture loaded",
					zap.String("kind", name),
					zap.String("path", path),
					zap.Int("read", res.Read),
					zap.Int64("inserted", res.Inserted))
			}
		},
	}
}
