package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
)

var (
	host = flag.String("host", "127.0.0.1", "address to bind")
	port = flag.String("port", "8888", "port number")
	root = flag.String("root", ".", "directory to serve")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	srv, err := NewServer(*root, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad root directory")
	}
	if err := srv.Listen(*host + ":" + *port); err != nil {
		logger.Fatal().Err(err).Msg("listen failed")
	}
	if err := srv.Serve(); err != nil {
		logger.Fatal().Err(err).Msg("serve failed")
	}
}
