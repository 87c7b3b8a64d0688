package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/zkrlabs/proof-registry-backend/archiver"
	"github.com/zkrlabs/proof-registry-backend/cmd/flags"
	"github.com/zkrlabs/proof-registry-backend/eventlog"
	"github.com/zkrlabs/proof-registry-backend/httpserver"
	"github.com/zkrlabs/proof-registry-backend/interfaces"
	"github.com/zkrlabs/proof-registry-backend/predicate"
	"github.com/zkrlabs/proof-registry-backend/registry"
	"github.com/zkrlabs/proof-registry-backend/storage"
)

var cliFlags = append([]cli.Flag{
	flags.OwnerFlag,
	flags.ListenAddrFlag,
	flags.ArchiveBackendFlag,
	flags.ArchiveIntervalFlag,
	flags.LogServiceFlagFn("registry-server"),
}, flags.CommonFlags...)

func main() {
	app := &cli.App{
		Name:  "registry-server",
		Usage: "Serve the proof registry API",
		Flags: cliFlags,
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			owner, err := interfaces.NewAddressFromHex(cCtx.String(flags.OwnerFlag.Name))
			if err != nil {
				logger.Error("Invalid owner address", "err", err)
				return err
			}

			events := eventlog.NewMemory()
			reg, err := registry.New(owner, &predicate.Parity{}, events, logger)
			if err != nil {
				logger.Error("Failed to create registry", "err", err)
				return err
			}

			archiveCtx, stopArchiver := context.WithCancel(context.Background())
			defer stopArchiver()

			if backends := cCtx.StringSlice(flags.ArchiveBackendFlag.Name); len(backends) > 0 {
				locationURIs := make([]interfaces.StorageBackendLocation, len(backends))
				for i, uri := range backends {
					locationURIs[i] = interfaces.StorageBackendLocation(uri)
				}

				storageFactory := storage.NewStorageBackendFactory(logger)
				multiStorage, err := storageFactory.CreateMultiBackend(locationURIs)
				if err != nil {
					logger.Error("Failed to create archive storage", "err", err)
					return err
				}

				interval := time.Duration(cCtx.Int64(flags.ArchiveIntervalFlag.Name)) * time.Second
				arch := archiver.New(events, reg, multiStorage, interval, logger)
				go arch.Run(archiveCtx)
				logger.Info("Archiver enabled", "backends", len(backends), "interval", interval.String())
			}

			handler := httpserver.NewHandler(reg, events, logger)

			cfg := flags.ConfigureServer(cCtx, logger, cCtx.String(flags.ListenAddrFlag.Name))
			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server", "owner", owner.String())
			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			stopArchiver()
			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
