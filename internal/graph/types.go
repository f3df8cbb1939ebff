package graph

import "github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"

type BookResolver struct {
	book model.Book
}

func (b *BookResolver) Title() string {
	return b.book.Title
}

func (b *BookResolver) Published() int32 {
	return int32(b.book.Published)
}

func (b *BookResolver) Author() string {
	return b.book.Author
}

func (b *BookResolver) Genres() []string {
	if b.book.Genres == nil {
		return []string{}
	}
	return b.book.Genres
}

type AuthorResolver struct {
	view model.AuthorView
}

func (a *AuthorResolver) Name() string {
	return a.view.Name
}

func (a *AuthorResolver) BookCount() int32 {
	return int32(a.view.BookCount)
}
