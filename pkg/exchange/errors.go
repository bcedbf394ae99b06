package exchange

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/varnam/knownwords/pkg/errcode"
)

// InvalidWordsPerFileError creates an ArgsError for a non-positive
// words-per-file shard size.
func InvalidWordsPerFileError(n int) error {
	msg := "<em>words_per_file</em> must be positive, got %d"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ArgsInvalidWordsPerFileError,
		Msg:  msg,
		Vars: []any{n},
		Err:  fmt.Errorf("from %s: words_per_file=%d is not positive", fn, n),
	}
}

// WriteFileError creates a StorageError for export shard-file
// write failures.
func WriteFileError(path string, err error) error {
	msg := "Cannot write export file <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageExecError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: failed to write %s: %w", fn, path, err),
	}
}

// ReadFileError creates a StorageError for import-file read failures.
func ReadFileError(path string, err error) error {
	msg := "Cannot read import file <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageQueryError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: failed to read %s: %w", fn, path, err),
	}
}

// UnknownFileTypeError creates an error for an import file whose
// header marker matches neither known format.
func UnknownFileTypeError(marker string) error {
	msg := "Unrecognized import file marker <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.UnknownFileTypeError,
		Msg:  msg,
		Vars: []any{marker},
		Err:  fmt.Errorf("from %s: unknown import marker %q", fn, marker),
	}
}
