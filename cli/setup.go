package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/akgood/chrome-sts/version"
)

func CreateSTSApp() *cli.App {
	app := cli.NewApp()
	app.Name = "chrome-sts"
	app.Version = version.Version
	app.Usage = "edit Google Chrome's Strict Transport Security configuration"
	app.ArgsUsage = "<hostname>"
	app.Flags = STSFlags

	return app
}
