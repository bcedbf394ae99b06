package learner

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/varnam/knownwords/pkg/errcode"
)

// EmptyWordError creates an ArgsError for a missing word text.
func EmptyWordError() error {
	msg := "Cannot learn an empty word"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ArgsEmptyWordError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: word text is empty", fn),
	}
}

// EmptyDecompositionError creates an ArgsError for a missing or
// malformed token decomposition.
func EmptyDecompositionError() error {
	msg := "Cannot learn a word with no token decomposition"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ArgsEmptyPatternError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: token decomposition is empty or contains an empty alternative list", fn),
	}
}
