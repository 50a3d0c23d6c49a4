package catalog

import (
	"context"
	"encoding/json"
	"os"
	"slices"

	domain "booking-intake/internal/domain/catalog"
	"booking-intake/internal/pkg/errs"
)

// File serves a catalog snapshot read once from a JSON array on disk.
type File struct {
	entries []domain.Entry
}

func NewFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read catalog %s", path), errs.ErrCatalogLoad)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "decode catalog %s", path), errs.ErrCatalogLoad)
	}
	return &File{entries: entries}, nil
}

func (f *File) List(_ context.Context) ([]domain.Entry, error) {
	return slices.Clone(f.entries), nil
}
