package generator

import (
	"github.com/ezrec/regext/translate"
)

var f = translate.From

// ErrFormat is returned for an unknown output format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("unknown format '%v', expected one of %v", string(err), FORMATS)
}
