// Package fixture holds the seed data the stores are created with.
package fixture

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
)

// Fixture is a full set of seed records.
type Fixture struct {
	Authors []model.Author `json:"authors"`
	Books   []model.Book   `json:"books"`
}

func born(year int) *int {
	return &year
}

// Default returns a fresh copy of the built-in seed data.
func Default() Fixture {
	return Fixture{
		Authors: []model.Author{
			{
				Name: "Robert Martin",
				ID:   uuid.MustParse("afa51ab0-344d-11e9-a414-719c6709cf3e"),
				Born: born(1952),
			},
			{
				Name: "Martin Fowler",
				ID:   uuid.MustParse("afa5b6f0-344d-11e9-a414-719c6709cf3e"),
				Born: born(1963),
			},
			{
				Name: "Fyodor Dostoevsky",
				ID:   uuid.MustParse("afa5b6f1-344d-11e9-a414-719c6709cf3e"),
				Born: born(1821),
			},
			{
				Name: "Joshua Kerievsky",
				ID:   uuid.MustParse("afa5b6f2-344d-11e9-a414-719c6709cf3e"),
			},
			{
				Name: "Sandi Metz",
				ID:   uuid.MustParse("afa5b6f3-344d-11e9-a414-719c6709cf3e"),
			},
		},
		Books: []model.Book{
			{
				Title:     "Clean Code",
				Published: 2008,
				Author:    "Robert Martin",
				ID:        uuid.MustParse("afa5b6f4-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"refactoring"},
			},
			{
				Title:     "Agile software development",
				Published: 2002,
				Author:    "Robert Martin",
				ID:        uuid.MustParse("afa5b6f5-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"agile", "patterns", "design"},
			},
			{
				Title:     "Refactoring, edition 2",
				Published: 2018,
				Author:    "Martin Fowler",
				ID:        uuid.MustParse("afa5de00-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"refactoring"},
			},
			{
				Title:     "Refactoring to patterns",
				Published: 2008,
				Author:    "Joshua Kerievsky",
				ID:        uuid.MustParse("afa5de01-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"refactoring", "patterns"},
			},
			{
				Title:     "Practical Object-Oriented Design, An Agile Primer Using Ruby",
				Published: 2012,
				Author:    "Sandi Metz",
				ID:        uuid.MustParse("afa5de02-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"refactoring", "design"},
			},
			{
				Title:     "Crime and punishment",
				Published: 1866,
				Author:    "Fyodor Dostoevsky",
				ID:        uuid.MustParse("afa5de03-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"classic", "crime"},
			},
			{
				Title:     "The Demon ",
				Published: 1872,
				Author:    "Fyodor Dostoevsky",
				ID:        uuid.MustParse("afa5de04-344d-11e9-a414-719c6709cf3e"),
				Genres:    []string{"classic", "revolution"},
			},
		},
	}
}
