package app

import (
	"github.com/vk/graphwatch/internal/registry"
	"github.com/vk/graphwatch/modules/degree"
	"github.com/vk/graphwatch/modules/dirty"
	"github.com/vk/graphwatch/modules/logger"
	"github.com/vk/graphwatch/modules/membership"
	"github.com/vk/graphwatch/modules/socketio"
)

// coreModules is the definitive list of all behavior modules that are
// compiled into the graphwatch binary.
var coreModules = []registry.Module{
	&degree.Module{},
	&dirty.Module{},
	&logger.Module{},
	&membership.Module{},
	&socketio.Module{},
}
