package ioclean

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlichen/pkg/errcode"
)

func MissingColumnError(file, column string) error {
	msg := "No column matching <em>%s</em> in <em>%s</em>"
	vars := []any{column, file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CleanMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q not found in %s",
			fn, column, file),
	}
}

func BinsConfigError(err error) error {
	msg := "Cannot load binning schemes"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CleanBinsConfigError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot load bins config: %w",
			fn, err),
	}
}

func BinningError(column string, err error) error {
	msg := "Cannot bin column <em>%s</em>"
	vars := []any{column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CleanBinningError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot bin %s: %w",
			fn, column, err),
	}
}

func EmptyResultError(file string) error {
	msg := "No rows of <em>%s</em> survived filtering"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CleanEmptyResultError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: all rows of %s filtered out",
			fn, file),
	}
}
