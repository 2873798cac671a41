package config

import (
	"flag"
	"os"
	"time"

	"github.com/brainkeep/brainkeep/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-i int      refresh interval in seconds
//	-t int      request timeout in seconds
//	-u          enable the file upload capability
//	-s string   path of the session state file
//
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// components (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-u", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "refresh interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.EnableUpload, "u", cfg.EnableUpload, "enable file uploads")
	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "path of the session state file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
