package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/evermed/finvalid/cmd/httpserver"
	"github.com/evermed/finvalid/internal/middleware"
	"github.com/evermed/finvalid/pkg/configpkg"
	"github.com/evermed/finvalid/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	go server.Snapshot.Start(config.RiskCacheInterval)

	err = http.ListenAndServe(config.ServerAddress, server)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
