package objects

func NewFictionBook(title, author string, year int, isbn string) Book {

	return Book{
		Title:           title,
		Author:          author,
		Genre:           FictionGenre,
		PublicationYear: year,
		ISBN:            isbn,
		Details:         &FictionDetails{},
	}
}

func NewNonFictionBook(title, author string, year int, isbn, subject string) Book {

	return Book{
		Title:           title,
		Author:          author,
		Genre:           NonFictionGenre,
		PublicationYear: year,
		ISBN:            isbn,
		Details:         &NonFictionDetails{Subject: subject},
	}
}

// NewReferenceBook creates a reference book that can not be checked out
func NewReferenceBook(title, author string, year int, isbn, edition string) Book {

	return Book{
		Title:           title,
		Author:          author,
		Genre:           ReferenceGenre,
		PublicationYear: year,
		ISBN:            isbn,
		Details:         &ReferenceDetails{Edition: edition},
	}
}

func NewChildrensBook(title, author string, year int, isbn, ageRange string) Book {

	return Book{
		Title:           title,
		Author:          author,
		Genre:           ChildrensGenre,
		PublicationYear: year,
		ISBN:            isbn,
		Details:         &ChildrenDetails{AgeRange: ageRange, HasIllustrations: true},
	}
}

func NewGenericBook(title, author, genre string, year int, isbn string) Book {

	return Book{
		Title:           title,
		Author:          author,
		Genre:           genre,
		PublicationYear: year,
		ISBN:            isbn,
		Details:         &GenericDetails{},
	}
}

// NewBook picks the book type by exact genre name. Unknown genres become generic books
// under their own genre. extraInfo is ignored for fiction, so series information is never
// filled from input.
func NewBook(genre, title, author string, year int, isbn, extraInfo string) Book {

	switch genre {

	case FictionGenre:
		return NewFictionBook(title, author, year, isbn)

	case NonFictionGenre:
		return NewNonFictionBook(title, author, year, isbn, extraInfo)

	case ReferenceGenre:
		return NewReferenceBook(title, author, year, isbn, extraInfo)

	case ChildrensGenre:
		return NewChildrensBook(title, author, year, isbn, extraInfo)

	default:
		return NewGenericBook(title, author, genre, year, isbn)
	}
}
