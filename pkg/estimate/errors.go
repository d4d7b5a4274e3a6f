package estimate

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx workbook.
// These are the only failures this package surfaces: once a workbook is
// open, malformed content degrades to empty collections instead of
// erroring.
var ErrInvalidFormat = errors.New("invalid xlsx format")
