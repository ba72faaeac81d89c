package cli

import (
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlags = []cli.Flag{
		// ProfileDir overrides the per-OS default Chrome profile location.
		&cli.StringFlag{
			Name:    "profile-dir",
			Aliases: []string{"p"},
			Usage:   "specify the Chrome profile directory holding the TransportSecurity file, overriding auto-detection",
			EnvVars: []string{"CHROME_PROFILE_DIR"},
		},
	}

	STSFlags = append(ProfileFlags, []cli.Flag{
		// ###############
		// ### Actions ###
		// ###############
		// Exactly one of get/set/remove may be given; get is the default.
		&cli.BoolFlag{
			Name:    "get",
			Aliases: []string{"g"},
			Usage:   "print the STS policy in effect for the hostname (exact entry, or a superdomain entry with include_subdomains)",
		},
		&cli.BoolFlag{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "enable an STS policy for the hostname",
		},
		&cli.BoolFlag{
			Name:    "remove",
			Aliases: []string{"r"},
			Usage:   "remove the STS policy stored for the exact hostname",
		},
		&cli.BoolFlag{
			Name:  "include-subdomains",
			Usage: "with --set, apply the policy to the hostname and all of its subdomains",
		},

		// #############
		// ### Setup ###
		// #############
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "specify at which log level should be logged. Possible options: trace, debug, info, warn, error, fatal",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "config-file",
			Usage:   "specify the location of the config file",
			Aliases: []string{"config"},
			EnvVars: []string{"CONFIG_FILE"},
		},
	}...)
)
