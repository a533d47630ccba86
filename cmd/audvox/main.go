// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/audvox/internal/cli"
)

func main() {
	if err := cli.Command().Execute(); err != nil {
		os.Exit(1)
	}
}
