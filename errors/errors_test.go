package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func (s *ErrorsTestSuite) TestNew() {

	s.Run("Should format message without changing the declared error", func() {

		err := MalformedLineError.New("a,b")
		s.Require().Equal("malformed line: a,b", err.Error())
		s.Require().Equal("malformed line: %s", MalformedLineError.Message)
	})

	s.Run("Should keep the cause when wrapping", func() {

		err := InputUnavailableError.Wrap(fs.ErrNotExist, "newBooks.txt")
		s.Require().Equal("could not open input file newBooks.txt: file does not exist", err.Error())
		s.Require().True(stdErrors.Is(err, fs.ErrNotExist))
		s.Require().True(stdErrors.Is(err, InputUnavailableError))
		s.Require().False(stdErrors.Is(err, OutputUnavailableError))
	})
}

func (s *ErrorsTestSuite) TestIsError() {

	wrapped := fmt.Errorf("run: %w", OutputUnavailableError.New("out.txt"))

	s.Require().True(IsError(wrapped, OutputUnavailableError))
	s.Require().False(IsError(wrapped, InputUnavailableError))
	s.Require().False(IsError(stdErrors.New("plain"), OutputUnavailableError))
}

func (s *ErrorsTestSuite) TestExitCode() {

	var testCases = map[string]struct {
		Err      error
		Expected int
	}{
		"Success":            {Err: nil, Expected: ExitOK},
		"Input unavailable":  {Err: InputUnavailableError.New("in"), Expected: ExitInputUnavailable},
		"Output unavailable": {Err: OutputUnavailableError.New("out"), Expected: ExitOutputUnavailable},
		"Report write":       {Err: ReportWriteError.New("out"), Expected: ExitFailure},
		"Input read":         {Err: InputReadError.New("in"), Expected: ExitFailure},
		"Plain error":        {Err: stdErrors.New("boom"), Expected: ExitFailure},
	}

	for name, testCase := range testCases {
		s.Run(name, func() {
			s.Require().Equal(testCase.Expected, ExitCode(testCase.Err))
		})
	}

	s.Require().NotEqual(ExitInputUnavailable, ExitOutputUnavailable)
}

func TestErrors(t *testing.T) {
	suite.Run(t, &ErrorsTestSuite{})
}
