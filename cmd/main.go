package main

import (
	"flag"
	"os"

	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/SystemBuilders/Containers/internal/demo"
	"github.com/SystemBuilders/Containers/internal/node"
	"github.com/rs/zerolog"
)

func main() {
	var (
		ip       string
		port     string
		runDemo  bool
		debugLog bool
	)
	flag.StringVar(&ip, "ip", "127.0.0.1", "IP address to serve the container service on")
	flag.StringVar(&port, "port", "61111", "Port to serve the container service on")
	flag.BoolVar(&runDemo, "demo", false, "Print the container demos and exit")
	flag.BoolVar(&debugLog, "debug", false, "Log every container operation")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debugLog {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.GlobalLevel())

	if runDemo {
		if err := demo.Run(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("demo")
		}
		return
	}

	cs := containerservice.NewSimpleContainerService(log)
	scfg := containerservice.NewSimpleConfig(ip, port)
	if err := node.Start(cs, scfg, log); err != nil {
		log.Fatal().Err(err).Msg("node")
	}
}
