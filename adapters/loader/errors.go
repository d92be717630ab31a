package loader

import (
	"errors"
	"fmt"
)

var (
	errEmpty  = errors.New("source is empty")
	errNoData = errors.New("source must have a header row and at least one data row")
)

func errUnsupported(name string) error {
	return fmt.Errorf("unsupported file type %q", name)
}
