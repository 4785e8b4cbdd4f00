package consensus

import "github.com/kaspanet/ghostledger/infrastructure/logger"

var log = logger.RegisterSubSystem("BDAG")
