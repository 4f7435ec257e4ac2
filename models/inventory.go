package models

import (
	"slices"

	"github.com/supakorn-kn/library-inventory/objects"
)

// Inventory groups books by genre. Books keep the order they were added in and
// genres remember the order they were first seen in.
type Inventory struct {
	books     map[string][]objects.Book
	firstSeen []string
	total     int
}

func NewInventory() *Inventory {

	return &Inventory{books: make(map[string][]objects.Book)}
}

func (inv *Inventory) Add(book objects.Book) {

	list, ok := inv.books[book.Genre]
	if !ok {
		inv.firstSeen = append(inv.firstSeen, book.Genre)
	}

	inv.books[book.Genre] = append(list, book)
	inv.total++
}

// Genres returns the genre names in byte-wise lexicographic order
func (inv *Inventory) Genres() []string {

	genres := slices.Clone(inv.firstSeen)
	slices.Sort(genres)

	return genres
}

func (inv *Inventory) FirstSeen() []string {
	return slices.Clone(inv.firstSeen)
}

func (inv *Inventory) Books(genre string) []objects.Book {
	return slices.Clone(inv.books[genre])
}

func (inv *Inventory) Count(genre string) int {
	return len(inv.books[genre])
}

func (inv *Inventory) Total() int {
	return inv.total
}

// Len returns the number of genres
func (inv *Inventory) Len() int {
	return len(inv.firstSeen)
}

// Clear drops every book so nothing stays reachable through the inventory
func (inv *Inventory) Clear() {

	clear(inv.books)
	inv.firstSeen = nil
	inv.total = 0
}
