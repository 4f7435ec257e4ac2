package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/supakorn-kn/library-inventory/models"
	"github.com/supakorn-kn/library-inventory/objects"
)

const (
	title            = "Library Inventory Report"
	titleUnderline   = "========================"
	restrictedMarker = "[Special checkout rules apply]"
)

// Write renders the inventory genre by genre in sorted genre order
func Write(w io.Writer, inv *models.Inventory) error {

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n%s\n\n", title, titleUnderline)

	for _, genre := range inv.Genres() {

		heading := genre + " Books:"
		fmt.Fprintf(bw, "%s\n%s\n", heading, strings.Repeat("-", len(heading)))

		for _, book := range inv.Books(genre) {
			bw.WriteString(Line(book))
			bw.WriteByte('\n')
		}

		fmt.Fprintf(bw, "Total %s Books: %d\n\n", genre, inv.Count(genre))
	}

	fmt.Fprintf(bw, "Total books in inventory: %d\n", inv.Total())

	return bw.Flush()
}

// Line formats a single book entry without the trailing newline
func Line(book objects.Book) string {

	var sb strings.Builder

	fmt.Fprintf(&sb, "\"%s\" by %s (%d) ISBN: %s", book.Title, book.Author, book.PublicationYear, book.ISBN)

	if description := book.Describe(); description != objects.StandardDetails {
		sb.WriteString(" - ")
		sb.WriteString(description)
	}

	if book.HasRestrictedCheckout() {
		sb.WriteString(" ")
		sb.WriteString(restrictedMarker)
	}

	return sb.String()
}
