package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-script/internal/config"
	"github.com/ironsheep/image-script/internal/rasterio"
	"github.com/ironsheep/image-script/internal/script"
	"github.com/ironsheep/image-script/internal/session"
	"github.com/ironsheep/image-script/internal/store"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "image-script - raster image editing by command script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  image-script               Start the interactive console")
	fmt.Fprintln(w, "  image-script -text         Read script commands from stdin")
	fmt.Fprintln(w, "  image-script -file <path>  Run a script file and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables (also read from ./.env):")
	fmt.Fprintf(w, "  %s=debug      Log level (default warn)\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %s=json      Log format, text or json (default text)\n", config.EnvLogFormat)
	fmt.Fprintf(w, "  %s=90     JPEG output quality 1-100 (default 95)\n", config.EnvJPEGQuality)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "image-script %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printUsage(stdout)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return script.ExitUsage
	}
	// Logs go to stderr; stdout carries diagnostics and console output
	logger := config.NewLogger(cfg, stderr)
	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("image-script starting")

	images := store.New()
	codec := &rasterio.Codec{JPEGQuality: cfg.JPEGQuality, Log: logger}
	interp := script.New(stdout,
		script.WithLogger(logger),
		script.WithCodec(codec),
		script.WithStore(images),
	)

	switch {
	case len(args) == 0:
		sess := session.New(images, codec, logger)
		if err := sess.RunConsole(stdin, stdout); err != nil {
			logger.WithError(err).Error("console input failed")
			return 1
		}
		return 0
	case args[0] == "-text" && len(args) == 1:
		return exitCode(interp.Run(stdin), logger)
	case args[0] == script.FileToken && len(args) == 2:
		return exitCode(interp.RunFile(args[1]), logger)
	}

	fmt.Fprintf(stderr, "invalid arguments: %v\n\n", args)
	printUsage(stderr)
	return script.ExitUsage
}

// exitCode maps an interpreter result to a process status.
func exitCode(err error, logger *logrus.Logger) int {
	if err == nil {
		return 0
	}
	var exit *script.ExitError
	if errors.As(err, &exit) {
		if exit.Err != nil {
			logger.WithError(exit.Err).WithField("code", exit.Code).Error("script terminated")
		}
		return exit.Code
	}
	logger.WithError(err).Error("reading script failed")
	return 1
}
