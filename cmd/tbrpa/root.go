// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tbrpa/config"
	"github.com/katalvlaran/tbrpa/logging"
)

// app carries what every subcommand shares.
type app struct {
	v       *viper.Viper
	out     io.Writer
	logOut  io.Writer
	cfgPath string
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, logOut: logOut}
	root := &cobra.Command{
		Use:           "tbrpa",
		Short:         "RPA susceptibility of tight-binding models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "run.yaml", "run file (YAML)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (overrides log_level)")
	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(a.runCmd(), a.meshCmd(), a.bandsCmd(), groupsCmd(out))

	return root
}

// load reads the run file with flag overrides applied.
func (a *app) load() (*config.File, error) {
	a.v.SetConfigFile(a.cfgPath)
	if err := a.v.ReadInConfig(); err != nil {
		return nil, err
	}

	return config.Decode(a.v)
}

func (a *app) logger(f *config.File) *logging.Logrus {
	return logging.NewLogrus(f.LogLevel, a.logOut)
}
