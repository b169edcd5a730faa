package micro

import (
	"errors"

	"github.com/ezrec/regext/translate"
)

var f = translate.From

var (
	// Table errors
	ErrWidth             = errors.New(f("opcode width out of range"))
	ErrMacroMissing      = errors.New(f("macro name missing"))
	ErrBitRange          = errors.New(f("opcode bit outside width"))
	ErrBitCount          = errors.New(f("primitive must own exactly one opcode bit"))
	ErrBitDuplicate      = errors.New(f("opcode bit duplicated"))
	ErrUsageNegative     = errors.New(f("negative usage counter"))
	ErrMnemonicMissing   = errors.New(f("mnemonic missing"))
	ErrMnemonicUnknown   = errors.New(f("mnemonic unknown"))
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrRuleEmpty         = errors.New(f("rule without sources"))
	ErrExclusionSelf     = errors.New(f("mnemonic excludes itself"))

	// Loader errors
	ErrLoadMissing = errors.New(f("required global missing"))
	ErrLoadType    = errors.New(f("unexpected value type"))
)

// ErrTable identifies the table item that failed validation.
type ErrTable struct {
	Item string
	Err  error
}

func (err ErrTable) Error() string {
	return f("table %v: %v", err.Item, err.Err)
}

func (err ErrTable) Unwrap() error {
	return err.Err
}

// ErrLoad identifies the description global that could not be converted.
type ErrLoad struct {
	Global string
	Err    error
}

func (err ErrLoad) Error() string {
	return f("%v: %v", err.Global, err.Err)
}

func (err ErrLoad) Unwrap() error {
	return err.Err
}
