package blockstore

import "github.com/kaspanet/ghostledger/infrastructure/logger"

var log = logger.RegisterSubSystem("BLST")
