package objects

import "fmt"

// StandardDetails is what Describe returns for a book without genre specific details
const StandardDetails = "Standard book"

const (
	FictionGenre    = "Fiction"
	NonFictionGenre = "Non-Fiction"
	ReferenceGenre  = "Reference"
	ChildrensGenre  = "Children's"
)

type Book struct {
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	ISBN            string

	Details Details
}

// Details is the closed set of genre specific fields a Book can carry.
// Only the types in this file implement it.
type Details interface {
	details()
}

type FictionDetails struct {
	IsSeriesPart bool
	SeriesName   string
	SeriesNumber int
}

type NonFictionDetails struct {
	Subject    string
	IsAcademic bool
}

type ReferenceDetails struct {
	Edition     string
	CanCheckout bool
}

type ChildrenDetails struct {
	AgeRange         string
	HasIllustrations bool
}

type GenericDetails struct{}

func (*FictionDetails) details()    {}
func (*NonFictionDetails) details() {}
func (*ReferenceDetails) details()  {}
func (*ChildrenDetails) details()   {}
func (*GenericDetails) details()    {}

// SetSeriesInfo clears the series name and number when the book is not part of a series
func (d *FictionDetails) SetSeriesInfo(isSeriesPart bool, name string, number int) {

	d.IsSeriesPart = isSeriesPart
	if !isSeriesPart {
		d.SeriesName = ""
		d.SeriesNumber = 0
		return
	}

	d.SeriesName = name
	d.SeriesNumber = number
}

// Describe returns the genre specific description, or StandardDetails when there is none
func (b Book) Describe() string {

	switch d := b.Details.(type) {

	case *FictionDetails:
		if d.IsSeriesPart {
			return fmt.Sprintf("Fiction - Part %d of %s series", d.SeriesNumber, d.SeriesName)
		}

		return "Fiction - Standalone novel"

	case *NonFictionDetails:
		description := "Non-Fiction - " + d.Subject
		if d.IsAcademic {
			description += " (Academic)"
		}

		return description

	case *ReferenceDetails:
		description := "Reference - " + d.Edition + " Edition"
		if !d.CanCheckout {
			description += " (In-library use only)"
		}

		return description

	case *ChildrenDetails:
		description := "Children's Book - For ages " + d.AgeRange
		if d.HasIllustrations {
			description += " (Illustrated)"
		}

		return description

	default:
		return StandardDetails
	}
}

func (b Book) HasRestrictedCheckout() bool {

	switch d := b.Details.(type) {

	case *NonFictionDetails:
		return d.IsAcademic

	case *ReferenceDetails:
		return !d.CanCheckout

	default:
		return false
	}
}
