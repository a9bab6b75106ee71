package iodecode

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
		Code: errcode.DecodeMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q not found in %s",
			fn, column, file),
	}
}

func MappingError(err error) error {
	msg := "Cannot build codename mapping"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DecodeMappingError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot build mapping: %w",
			fn, err),
	}
}
