package main

import (
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/storage"
	"github.com/trezcool/portal/storage/kv/metrickv"
)

func main() {
	c := newContainer()

	var code int
	must(c.Invoke(func(conf *core.Config, logger core.Logger, s *storage.Store, reg *prometheus.Registry, cli *commandLine) {
		defer func() {
			if err := s.Close(); err != nil {
				logger.Error("closing storage", err)
			}
		}()

		if err := cli.run(os.Args); err != nil {
			if err != errHelp {
				cli.printError(err)
			}
			code = 1
		}

		if conf.Metrics {
			if err := metrickv.WriteText(os.Stderr, reg); err != nil {
				logger.Error("writing metrics", err)
			}
		}
	}))
	os.Exit(code)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
