package iobaseline

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
		Code: errcode.BaselineMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q not found in %s",
			fn, column, file),
	}
}

func EmptyColumnError(file, column string) error {
	msg := "Column <em>%s</em> of <em>%s</em> has no usable values"
	vars := []any{column, file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BaselineEmptyColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no usable values in %s of %s",
			fn, column, file),
	}
}
