package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

// Options returns the leveldb options for a database with the given block
// cache size. It's a variable so tests can shrink the write buffer.
var Options = func(cacheSizeMiB int) *opt.Options {
	return &opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     cacheSizeMiB * opt.MiB,
		WriteBuffer:            (cacheSizeMiB / 2) * opt.MiB,
		DisableSeeksCompaction: true,
	}
}
