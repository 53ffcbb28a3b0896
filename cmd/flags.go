package cmd

import (
	"github.com/gnames/pokedb/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts flags that were set on the command line into
// config options. Flags left at their defaults do not override
// config.yaml or the environment.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		res = append(res, config.OptServerPort(port))
	}
	if flags.Changed("host") {
		host, _ := flags.GetString("host")
		res = append(res, config.OptServerHost(host))
	}
	if flags.Changed("access-log") {
		b, _ := flags.GetBool("access-log")
		res = append(res, config.OptServerAccessLog(b))
	}
	if flags.Changed("dir") {
		dir, _ := flags.GetString("dir")
		res = append(res, config.OptSeedDir(dir))
	}
	return res
}
