// Package library resolves the author/book queries and the addBook
// mutation against a store.Store.
//
// Resolver answers reads and never changes the store. Mutator owns the only
// write path; it checks (title, author) uniqueness and appends inside one
// critical section, so concurrent AddBook calls in a process cannot both
// insert the same pair. The author named by a new book is not required to
// exist.
package library
