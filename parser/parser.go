package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	serverError "github.com/supakorn-kn/library-inventory/errors"
)

const fieldCount = 6

// Record is one line of the book list: Title,Author,Year,Genre,ISBN,ExtraInfo
type Record struct {
	Title     string
	Author    string
	Year      int
	Genre     string
	ISBN      string
	ExtraInfo string
}

// ParseLine splits the line on its first five commas. Anything after the fifth comma,
// further commas included, is kept as ExtraInfo. Empty fields are allowed.
func ParseLine(line string) (Record, error) {

	fields := strings.SplitN(line, ",", fieldCount)
	if len(fields) < fieldCount {
		return Record{}, serverError.MalformedLineError.New(line)
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Record{}, serverError.MalformedLineError.Wrap(err, line)
	}

	return Record{
		Title:     fields[0],
		Author:    fields[1],
		Year:      year,
		Genre:     fields[3],
		ISBN:      fields[4],
		ExtraInfo: fields[5],
	}, nil
}

// Scanner reads records line by line, skipping lines ParseLine rejects.
// Lines have no length limit.
type Scanner struct {
	reader  *bufio.Reader
	record  Record
	skipErr error
	err     error

	Lines   int
	Skipped int
}

func NewScanner(r io.Reader) *Scanner {

	return &Scanner{reader: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false at the end of input or on a read error.
func (s *Scanner) Scan() bool {

	if s.err != nil {
		return false
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {

		if err != io.EOF {
			s.err = err
			return false
		}

		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	s.Lines++

	record, err := ParseLine(line)
	if err != nil {
		s.Skipped++
		s.record = Record{}
		s.skipErr = err
		return true
	}

	s.record = record
	s.skipErr = nil

	return true
}

// Record returns the current record and the reason it was skipped, if it was
func (s *Scanner) Record() (Record, error) {
	return s.record, s.skipErr
}

func (s *Scanner) Err() error {
	return s.err
}
