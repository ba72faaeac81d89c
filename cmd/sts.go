package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/akgood/chrome-sts/config"
	"github.com/akgood/chrome-sts/sts/profile"
	"github.com/akgood/chrome-sts/sts/store"
)

// Run executes the requested STS action: --set or --remove mutate the store
// and persist it, --get (the default) only reads it.
func Run(ctx *cli.Context) error {
	cfg, err := config.ReadConfig(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not read config: %v", err), 1)
	}
	config.MergeConfig(ctx, cfg)

	// Initialize the logger.
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(logLevel)

	if ctx.Args().Len() != 1 {
		_ = cli.ShowAppHelp(ctx)
		return cli.Exit("exactly one hostname argument is required", 1)
	}
	hostname := ctx.Args().First()

	actions := 0
	for _, name := range []string{"get", "set", "remove"} {
		if ctx.Bool(name) {
			actions++
		}
	}
	if actions > 1 {
		return cli.Exit("--get, --set and --remove are mutually exclusive", 1)
	}

	storePath, err := locateStore(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	st, err := store.Load(storePath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	switch {
	case ctx.Bool("set"):
		err = runSet(st, hostname, ctx.Bool("include-subdomains"))
	case ctx.Bool("remove"):
		err = runRemove(st, hostname)
	default:
		err = runGet(ctx.App.Writer, st, hostname)
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if st.Dirty() {
		if err := st.Persist(); err != nil {
			return cli.Exit(fmt.Sprintf("could not write %s: %v", storePath, err), 1)
		}
	}

	return nil
}

// locateStore resolves the path of the TransportSecurity file, preferring an
// explicitly configured profile directory over per-OS auto-detection.
func locateStore(cfg *config.Config) (string, error) {
	profileDir := cfg.Profile.Dir
	if profileDir == "" {
		var err error
		profileDir, err = profile.Dir(runtime.GOOS, os.Getenv)
		if err != nil {
			return "", fmt.Errorf("could not locate your Chrome profile (%v), please pass it with --profile-dir", err)
		}
	}

	if _, err := os.Stat(profileDir); err != nil {
		return "", fmt.Errorf("profile directory %q is not accessible (%v), please pass one with --profile-dir", profileDir, err)
	}

	return filepath.Join(profileDir, cfg.Profile.File), nil
}

func runGet(out io.Writer, st *store.Store, hostname string) error {
	matched, entry, ok, err := st.LookupEffective(hostname)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s:\n", matched)
	if !ok {
		fmt.Fprintln(out, "No configuration exists for that site")
		return nil
	}

	content, err := json.MarshalIndent(entry, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(content))

	return nil
}

func runSet(st *store.Store, hostname string, includeSubdomains bool) error {
	if err := st.Set(hostname, includeSubdomains); err != nil {
		return err
	}

	log.Info().Str("hostname", hostname).Bool("include-subdomains", includeSubdomains).Msg("STS policy set")
	return nil
}

func runRemove(st *store.Store, hostname string) error {
	existed, err := st.Remove(hostname)
	if err != nil {
		return err
	}

	if !existed {
		log.Warn().Str("hostname", hostname).Msg("no STS policy stored for that exact hostname")
		return nil
	}

	log.Info().Str("hostname", hostname).Msg("STS policy removed")
	return nil
}
