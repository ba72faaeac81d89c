// Package main is chrome-sts, a small editor for Google Chrome's locally
// persisted "Strict Transport Security" (HSTS) configuration.
//
// Chrome stores received Strict-Transport-Security policies in a JSON file
// called "TransportSecurity" inside the user profile directory. Sites are
// indexed by a one-way hash of the domain name, so the stored sites cannot be
// enumerated - but a policy for a *known* site can be queried, added or
// removed, which is exactly what this tool does:
//
//	chrome-sts --get www.facebook.com
//	chrome-sts --set www.facebook.com
//	chrome-sts --set --include-subdomains eff.org
//	chrome-sts --remove www.google.com
//
// Note that --remove only removes a policy stored for the exact hostname:
// removing "www.google.com" leaves a "google.com" policy untouched even if it
// has include_subdomains enabled. Note also that a site which serves its own
// Strict-Transport-Security header will likely overwrite whatever this tool
// wrote the next time Chrome visits it.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/akgood/chrome-sts/cli"
	"github.com/akgood/chrome-sts/cmd"
)

func main() {
	app := cli.CreateSTSApp()
	app.Action = cmd.Run
	if err := app.Run(os.Args); err != nil {
		log.Error().Msgf("%v", err)
		os.Exit(1)
	}
}
