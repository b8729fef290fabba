package opts

import (
	"github.com/walteh/envwiz/pkg/log"
	"github.com/walteh/envwiz/pkg/store"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Logger        *log.Logger
	Store         *store.Store
	WizardVersion string
}
