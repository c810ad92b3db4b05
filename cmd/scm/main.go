package main

import (
	"github.com/seismiclabs/marketplace/internal/cli"
	"github.com/seismiclabs/marketplace/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

func main() {
	cli.Execute()
}
