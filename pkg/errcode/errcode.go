// Package errcode enumerates the error codes the known-words store can
// raise. Codes are grouped by the error kinds from the store's error
// handling design: args, storage, not-found, file-format, and the soft
// learning-skipped case.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// ArgsError — invalid or missing required input.
	ArgsEmptyWordError
	ArgsEmptyPatternError
	ArgsNilHandleError
	ArgsInvalidWordsPerFileError

	// StorageError — any underlying store failure.
	StorageOpenError
	StorageSchemaError
	StoragePrepareError
	StorageExecError
	StorageQueryError
	StorageScanError
	StorageTxBeginError
	StorageTxCommitError
	StorageTxRollbackError
	StorageCloseError

	// NotFound — delete_word against a missing word.
	WordNotFoundError

	// UnknownFileType — import header marker matched neither known format.
	UnknownFileTypeError

	// LearningSkipped — soft, reported as success with no side effect.
	LearningSkippedError
)
