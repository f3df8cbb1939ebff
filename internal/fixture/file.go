package fixture

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load returns the fixture stored at path, or the default fixture when path
// is empty.
func Load(path string) (Fixture, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a JSON fixture. Records without an id get a fresh one;
// duplicate ids and publication years outside the 32-bit GraphQL Int range
// are rejected.
func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(f.Authors)+len(f.Books))
	claim := func(id *uuid.UUID) error {
		if *id == uuid.Nil {
			fresh, err := model.NewID()
			if err != nil {
				return err
			}
			*id = fresh
		}
		if _, dup := seen[*id]; dup {
			return fmt.Errorf("duplicate id %s", *id)
		}
		seen[*id] = struct{}{}
		return nil
	}

	for i := range f.Authors {
		if err := claim(&f.Authors[i].ID); err != nil {
			return Fixture{}, fmt.Errorf("author %q: %w", f.Authors[i].Name, err)
		}
	}
	for i := range f.Books {
		if err := claim(&f.Books[i].ID); err != nil {
			return Fixture{}, fmt.Errorf("book %q: %w", f.Books[i].Title, err)
		}
		if p := f.Books[i].Published; p < math.MinInt32 || p > math.MaxInt32 {
			return Fixture{}, fmt.Errorf("book %q: published %d out of range", f.Books[i].Title, p)
		}
		if f.Books[i].Genres == nil {
			f.Books[i].Genres = []string{}
		}
	}

	return f, nil
}
