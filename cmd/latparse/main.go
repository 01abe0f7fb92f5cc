// latparse - Latency Field Extractor
//
// latparse copies the value field of every "Latency" line in a log file
// into an output file, one value per matching line.
package main

import (
	"os"

	"github.com/ccollicutt/latparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
