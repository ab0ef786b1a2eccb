// Package sysexit defines the BSD sysexits.h exit-status codes for command
// line programs, plus helpers for attaching a status to an error so that a
// main function can exit with the right code.
//
// Error numbers begin at Base to reduce the chance of clashing with exit
// statuses arbitrary programs already return.
package sysexit

import (
	"errors"
	"fmt"
)

// Code is a process exit status.
type Code int

const (
	// OK is successful termination.
	OK Code = 0

	// Usage means the command was used incorrectly: wrong number of
	// arguments, a bad flag, bad syntax in a parameter.
	Usage Code = 64
	// DataErr means the input data was incorrect in some way. Only for
	// user data, not system files.
	DataErr Code = 65
	// NoInput means an input file did not exist or was not readable.
	NoInput Code = 66
	// NoUser means the specified user did not exist.
	NoUser Code = 67
	// NoHost means the specified host did not exist.
	NoHost Code = 68
	// Unavailable means a required service or support program is
	// unavailable. Also the catch-all when something failed for an
	// unknown reason.
	Unavailable Code = 69
	// Software means an internal software error unrelated to the
	// operating system was detected.
	Software Code = 70
	// OSErr means an operating system error, such as "cannot fork" or
	// "cannot create pipe".
	OSErr Code = 71
	// OSFile means a system file does not exist, cannot be opened, or
	// has a syntax error.
	OSFile Code = 72
	// CantCreat means a user-specified output file cannot be created.
	CantCreat Code = 73
	// IOErr means an error occurred doing I/O on some file.
	IOErr Code = 74
	// TempFail means a temporary failure; the request should be
	// reattempted later.
	TempFail Code = 75
	// Protocol means the remote system returned something impossible
	// during a protocol exchange.
	Protocol Code = 76
	// NoPerm means insufficient permission at a level above the file
	// system.
	NoPerm Code = 77
	// Config means a configuration error.
	Config Code = 78

	// Base is the lowest error code in the table.
	Base = Usage
	// Max is the highest error code in the table.
	Max = Config
)

var names = map[Code]string{
	OK:          "EX_OK",
	Usage:       "EX_USAGE",
	DataErr:     "EX_DATAERR",
	NoInput:     "EX_NOINPUT",
	NoUser:      "EX_NOUSER",
	NoHost:      "EX_NOHOST",
	Unavailable: "EX_UNAVAILABLE",
	Software:    "EX_SOFTWARE",
	OSErr:       "EX_OSERR",
	OSFile:      "EX_OSFILE",
	CantCreat:   "EX_CANTCREAT",
	IOErr:       "EX_IOERR",
	TempFail:    "EX_TEMPFAIL",
	Protocol:    "EX_PROTOCOL",
	NoPerm:      "EX_NOPERM",
	Config:      "EX_CONFIG",
}

var descriptions = map[Code]string{
	OK:          "successful termination",
	Usage:       "command line usage error",
	DataErr:     "data format error",
	NoInput:     "cannot open input",
	NoUser:      "addressee unknown",
	NoHost:      "host name unknown",
	Unavailable: "service unavailable",
	Software:    "internal software error",
	OSErr:       "system error",
	OSFile:      "critical OS file missing",
	CantCreat:   "can't create output file",
	IOErr:       "input/output error",
	TempFail:    "temporary failure; try again later",
	Protocol:    "remote error in protocol",
	NoPerm:      "permission denied",
	Config:      "configuration error",
}

// String returns the symbolic sysexits.h name, or "unknown" for codes
// outside the table.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Describe returns the one-line prose meaning of the code, or "unknown exit
// status" for codes outside the table.
func (c Code) Describe() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "unknown exit status"
}

// Valid reports whether c is OK or within [Base, Max].
func (c Code) Valid() bool {
	return c == OK || (c >= Base && c <= Max)
}

// exitError carries a Code through an error chain.
type exitError struct {
	code Code
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%s (%s)", e.err, e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// Wrap attaches an exit code to err. A nil err returns nil.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// Wrapf attaches an exit code to a formatted error.
func Wrapf(code Code, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// CodeOf extracts the exit code attached to err. It returns OK for a nil
// error and fallback for an error with no attached code.
func CodeOf(err error, fallback Code) Code {
	if err == nil {
		return OK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return fallback
}
