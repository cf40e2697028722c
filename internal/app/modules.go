package app

import (
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/modules/action"
	"github.com/specialistvlad/graphflow/modules/arithmetic"
	"github.com/specialistvlad/graphflow/modules/integer"
	"github.com/specialistvlad/graphflow/modules/print"
	"github.com/specialistvlad/graphflow/modules/repeat"
)

// coreModules is the definitive list of all modules that are compiled into
// the graphflow binary.
var coreModules = []registry.Module{
	&action.Module{},
	&integer.Module{},
	&arithmetic.Module{},
	&print.Module{},
	&repeat.Module{},
}
