package store

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/varnam/knownwords/pkg/errcode"
)

// OpenError creates an error for store-open failures.
func OpenError(path string, err error) error {
	msg := "Cannot open known-words store <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err: fmt.Errorf("from %s: failed to open %s: %w",
			fn, path, err),
	}
}

// SchemaError creates an error for schema-bootstrap failures.
func SchemaError(err error) error {
	msg := "Cannot create known-words schema"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageSchemaError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: failed to bootstrap schema: %w",
			fn, err),
	}
}

// PrepareError creates an error for statement-preparation failures.
func PrepareError(id StmtID, err error) error {
	msg := "Cannot prepare statement %d"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StoragePrepareError,
		Msg:  msg,
		Vars: []any{int(id)},
		Err: fmt.Errorf("from %s: failed to prepare statement %d: %w",
			fn, id, err),
	}
}

// ExecError creates an error for write-statement failures.
func ExecError(err error) error {
	msg := "Known-words store write failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageExecError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: exec failed: %w",
			fn, err),
	}
}

// QueryError creates an error for read-statement failures.
func QueryError(err error) error {
	msg := "Known-words store query failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageQueryError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: query failed: %w",
			fn, err),
	}
}

// ScanError creates an error for row-scan failures.
func ScanError(err error) error {
	msg := "Cannot read known-words store row"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageScanError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: scan failed: %w",
			fn, err),
	}
}

// TxBeginError creates an error for transaction-begin failures.
func TxBeginError(err error) error {
	msg := "Cannot begin transaction"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageTxBeginError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: begin failed: %w",
			fn, err),
	}
}

// TxCommitError creates an error for transaction-commit failures.
func TxCommitError(err error) error {
	msg := "Cannot commit transaction"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageTxCommitError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: commit failed: %w",
			fn, err),
	}
}

// TxRollbackError creates an error for transaction-rollback failures.
func TxRollbackError(err error) error {
	msg := "Cannot rollback transaction"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.StorageTxRollbackError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: rollback failed: %w",
			fn, err),
	}
}

// WordNotFoundError creates a NotFound error for delete_word against a
// missing word.
func WordNotFoundError(text string) error {
	msg := "No known word <em>%s</em> to delete"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.WordNotFoundError,
		Msg:  msg,
		Vars: []any{text},
		Err: fmt.Errorf("from %s: word %q not found",
			fn, text),
	}
}
