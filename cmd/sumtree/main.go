/*
Command sumtree inspects text files loaded into a B+ sum-tree of text
chunks.

	sumtree stats FILE [--json]
	sumtree dump FILE [--html | --dot]
	sumtree line FILE N

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
