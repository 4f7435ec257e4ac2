package errors

const (
	InputUnavailableErrorCode  = 300_001
	OutputUnavailableErrorCode = 300_002
	MalformedLineErrorCode     = 300_003
	ReportWriteErrorCode       = 300_004
	InputReadErrorCode         = 300_005
)

// InputUnavailableError indicates the book list could not be opened or read
var InputUnavailableError = new(InputUnavailableErrorCode, "InputUnavailable", "could not open input file %s")

// OutputUnavailableError indicates the inventory report could not be created
var OutputUnavailableError = new(OutputUnavailableErrorCode, "OutputUnavailable", "could not open output file %s")

// MalformedLineError indicates a line that does not follow Title,Author,Year,Genre,ISBN,ExtraInfo
var MalformedLineError = new(MalformedLineErrorCode, "MalformedLine", "malformed line: %s")

// ReportWriteError indicates the report failed part way through writing
var ReportWriteError = new(ReportWriteErrorCode, "ReportWrite", "could not write report to %s")

// InputReadError indicates the book list was opened but reading it failed part way through
var InputReadError = new(InputReadErrorCode, "InputRead", "could not read input file %s")
