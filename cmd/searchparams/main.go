package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lomik/zapwriter"
	"go.uber.org/zap"
)

// Version of searchparams
const Version = "0.1"

func main() {
	var err error

	configFile := flag.String("config", "", "Filename of config")
	printDefaultConfig := flag.Bool("config-print-default", false, "Print default config")
	checkConfig := flag.Bool("check-config", false, "Check config and exit")

	encodeMode := flag.Bool("encode", false, "Read JSON objects from stdin and write query strings (default is the reverse)")
	printVersion := flag.Bool("version", false, "Print version")

	flag.Parse()

	if *printVersion {
		fmt.Print(Version)
		return
	}

	cfg := NewConfig()

	if *printDefaultConfig {
		if err = PrintConfig(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err = ParseConfig(*configFile, cfg); err != nil {
		log.Fatal(err)
	}

	if err = zapwriter.ApplyConfig([]zapwriter.Config{cfg.Logging}); err != nil {
		log.Fatal(err)
	}

	if *checkConfig {
		return
	}

	logger := zapwriter.Logger("searchparams")

	if *encodeMode {
		err = encodeStream(os.Stdin, os.Stdout, cfg, logger)
	} else {
		err = decodeStream(os.Stdin, os.Stdout, cfg, logger)
	}
	if err != nil {
		logger.Fatal("filter failed", zap.Error(err))
	}
}
