package blueordermanager

import "github.com/kaspanet/ghostledger/infrastructure/logger"

var log = logger.RegisterSubSystem("BORD")
