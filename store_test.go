package ogmaker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test_ogmaker.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		s.Close()
	}

	return s, cleanup
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetImage(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	img := ImageRecord{
		Slug:        "observer-pattern",
		Title:       "Observer Pattern",
		Path:        "output/observer-pattern.png",
		Size:        48213,
		GeneratedAt: "2024-01-15T10:00:00Z",
	}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	got, err := s.GetImage("observer-pattern")
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	if got != img {
		t.Errorf("GetImage = %+v, want %+v", got, img)
	}
}

func TestGetImageNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.GetImage("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetImage error = %v, want ErrNotFound", err)
	}
}

func TestSaveImageReplacesSameSlug(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.SaveImage(ImageRecord{Slug: "same", Title: "Same", Path: "output/same.png", GeneratedAt: "2024-01-15T10:00:00Z"}); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if err := s.SaveImage(ImageRecord{Slug: "same", Title: "Same!", Path: "output/same.png", GeneratedAt: "2024-01-16T10:00:00Z"}); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	if images[0].Title != "Same!" {
		t.Errorf("Title = %q, want %q", images[0].Title, "Same!")
	}
}

func TestListImagesOrder(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	records := []ImageRecord{
		{Slug: "old", Title: "Old", Path: "output/old.png", GeneratedAt: "2024-01-01T00:00:00Z"},
		{Slug: "new", Title: "New", Path: "output/new.png", GeneratedAt: "2024-03-01T00:00:00Z"},
		{Slug: "mid", Title: "Mid", Path: "output/mid.png", GeneratedAt: "2024-02-01T00:00:00Z"},
	}
	for _, r := range records {
		if err := s.SaveImage(r); err != nil {
			t.Fatalf("SaveImage failed: %v", err)
		}
	}

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, slug := range want {
		if images[i].Slug != slug {
			t.Errorf("images[%d].Slug = %q, want %q", i, images[i].Slug, slug)
		}
	}
}

func TestImageCacheInvalidate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	c := NewImageCache(s, time.Hour)
	images, err := c.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("len(images) = %d, want 0", len(images))
	}

	if err := s.SaveImage(ImageRecord{Slug: "fresh", Title: "Fresh", Path: "output/fresh.png", GeneratedAt: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if images, _ := c.ListImages(); len(images) != 0 {
		t.Errorf("cached list changed before invalidation: %d images", len(images))
	}

	c.Invalidate()
	img, err := c.GetImage("fresh")
	if err != nil {
		t.Fatalf("GetImage after invalidate failed: %v", err)
	}
	if img.Title != "Fresh" {
		t.Errorf("Title = %q, want %q", img.Title, "Fresh")
	}
	if _, err := c.GetImage("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetImage error = %v, want ErrNotFound", err)
	}
}
