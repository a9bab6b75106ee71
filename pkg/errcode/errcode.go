package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// CSV errors
	CSVReadError
	CSVWriteError
	CSVEmptyTableError

	// Decode errors
	DecodeMissingColumnError
	DecodeMappingError
	DecodeVerifyError

	// Clean errors
	CleanMissingColumnError
	CleanBinsConfigError
	CleanBinningError
	CleanEmptyResultError

	// Baseline errors
	BaselineMissingColumnError
	BaselineEmptyColumnError

	// SQLite export errors
	SQLiteOpenError
	SQLiteExecError
)
