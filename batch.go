package ogmaker

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Recorder persists a manifest entry for a generated image.
type Recorder interface {
	SaveImage(img ImageRecord) error
}

// Batch renders items one at a time. A failed item is logged and skipped;
// nothing a single item does can stop the run.
type Batch struct {
	Generator ImageGenerator
	Recorder  Recorder // optional
	Logger    *slog.Logger
}

// Run generates images for the first limit items, in order. A limit at or
// below zero processes nothing and a limit above len(items) processes all of
// them; callers without a limit pass len(items).
func (b *Batch) Run(items []Item, limit int) Summary {
	logger := orDiscard(b.Logger)
	limit = max(0, min(limit, len(items)))
	todo := items[:limit]

	logger.Info(fmt.Sprintf("Generating OG images for %d items (out of %d total)...", len(todo), len(items)))
	summary := Summary{Total: len(items), Attempted: len(todo)}
	for _, item := range todo {
		path, err := b.Generator.Generate(item)
		if err != nil {
			logger.Error("Error generating OG image for "+item.Title, "err", err)
			continue
		}
		logger.Info("Generated OG image for "+item.Title, "path", path)
		summary.Generated = append(summary.Generated, Generated{Title: item.Title, Path: path})
		b.record(logger, item, path)
	}
	logger.Info("OG image generation complete!")
	logger.Info(fmt.Sprintf("Generated %d images out of %d items", len(summary.Generated), summary.Attempted))
	return summary
}

func (b *Batch) record(logger *slog.Logger, item Item, path string) {
	if b.Recorder == nil {
		return
	}
	img := ImageRecord{
		Slug:        item.Slug,
		Title:       item.Title,
		Path:        path,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if fi, err := os.Stat(path); err == nil {
		img.Size = int(fi.Size())
	}
	if err := b.Recorder.SaveImage(img); err != nil {
		logger.Warn("record image in manifest", "slug", item.Slug, "err", err)
	}
}
