//
// Date: 2025-12-08
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Spotify playlist randomizer. Runs the HTTP API or performs
// one-off listing and randomization from the command line.
//

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cloudmanic/spotify-randomizer/config"
	"github.com/cloudmanic/spotify-randomizer/logging"
	"github.com/cloudmanic/spotify-randomizer/randomize"
	"github.com/cloudmanic/spotify-randomizer/spotify"
)

const tokenEnvVar = "SPOTIFY_ACCESS_TOKEN"

// main is the entry point for the application.
func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "spotify-randomizer",
		Usage:   "Shuffle Spotify playlists in place",
		Version: "0.1.0",
		Writer:  os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			playlistsCommand(),
			randomizeCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on (overrides config)",
			},
		},
		Action: runServe,
	}
}

func playlistsCommand() *cli.Command {
	return &cli.Command{
		Name:   "playlists",
		Usage:  "List the playlists you own",
		Flags:  []cli.Flag{tokenFlag()},
		Action: runPlaylists,
	}
}

func randomizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "randomize",
		Usage:     "Shuffle a playlist and write the new order back",
		ArgsUsage: "<playlist id, URL, URI or name>",
		Flags:     []cli.Flag{tokenFlag()},
		Action:    runRandomize,
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "token",
		Aliases: []string{"t"},
		Usage:   "Spotify access token",
		Sources: cli.EnvVars(tokenEnvVar),
	}
}

// app holds what every command needs once configuration is loaded.
type app struct {
	config  *config.Config
	logger  *log.Logger
	factory *spotify.Factory
}

// setup loads configuration and builds the logger and client factory.
func setup(cmd *cli.Command) (*app, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if cmd.Bool("debug") {
		level = "debug"
	}

	logger, err := logging.New(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return &app{
		config:  cfg,
		logger:  logger,
		factory: spotify.NewFactory(cfg.Spotify.APIBaseURL, cfg.Spotify.RequestsPerSecond, cfg.Spotify.Burst),
	}, nil
}

func (a *app) randomizeOptions() randomize.Options {
	return randomize.Options{
		PageSize:             a.config.Spotify.PageSize,
		WriteBatchSize:       a.config.Spotify.WriteBatchSize,
		SerializePerPlaylist: a.config.Randomize.SerializePerPlaylist,
		Logger:               a.logger,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	if port := cmd.Int("port"); port > 0 {
		a.config.Server.Port = int(port)
	}

	server := spotify.NewServer(spotify.ServerOptions{
		NewClient:      a.factory.Client,
		Randomize:      a.randomizeOptions(),
		RequestTimeout: a.config.Server.RequestTimeout(),
		Logger:         a.logger,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, a.config.Server.Addr(), a.config.Server.ShutdownTimeout())
}

func runPlaylists(ctx context.Context, cmd *cli.Command) error {
	token, err := tokenFrom(cmd.String("token"))
	if err != nil {
		return err
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	playlists, err := spotify.OwnedPlaylists(ctx, spotify.Instrument(a.factory.Client(ctx, token)))
	if err != nil {
		return err
	}

	spotify.PrintPlaylistsTable(cmd.Root().Writer, playlists)
	return nil
}

func runRandomize(ctx context.Context, cmd *cli.Command) error {
	token, err := tokenFrom(cmd.String("token"))
	if err != nil {
		return err
	}

	input := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if input == "" {
		return fmt.Errorf("%w: pass a playlist id, URL, URI or name", randomize.ErrInvalidPlaylistID)
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	client := spotify.Instrument(a.factory.Client(ctx, token))

	playlistID, err := spotify.ResolvePlaylistID(ctx, client, input)
	if err != nil {
		return err
	}

	service := randomize.NewService(func(ctx context.Context, token string) randomize.RemoteClient {
		return spotify.NewRemote(client)
	}, a.randomizeOptions())

	result, err := service.Randomize(ctx, playlistID, token)
	if result != nil {
		spotify.PrintTracksTable(cmd.Root().Writer, result)
	}
	return err
}

// tokenFrom accepts a raw access token or a full "Bearer <token>" value.
func tokenFrom(value string) (string, error) {
	token := strings.TrimSpace(value)
	token = strings.TrimPrefix(token, "Bearer ")

	if err := randomize.ValidateCredential(token); err != nil {
		return "", fmt.Errorf("%w (use --token or %s)", err, tokenEnvVar)
	}
	return token, nil
}
