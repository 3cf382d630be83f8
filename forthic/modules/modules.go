package modules

import (
	"go.uber.org/zap"

	"github.com/forthic-lang/forthic/forthic"
)

// Standard returns the standard library modules, in the order a host should
// import them into a fresh Interpreter. logger backs LogModule's
// PROFILE-*/START-LOG/END-LOG words.
func Standard(logger *zap.Logger) []*forthic.Module {
	return []*forthic.Module{
		NewCoreModule().Module,
		NewArrayModule().Module,
		NewBooleanModule().Module,
		NewMathModule().Module,
		NewRecordModule().Module,
		NewStringModule().Module,
		NewDateTimeModule().Module,
		NewJSONModule().Module,
		NewLogModule(logger).Module,
	}
}
