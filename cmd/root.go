/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "symfem",
	Short: "Exact polynomial algebra for finite element shape functions",
	Long: `
Builds shape functions and matrices of polynomials symbolically, differentiates,
integrates and multiplies them exactly, then evaluates them at points or over
quadrature rules.

symfem eval -P problem.yaml
symfem element -t Quad`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dir := viper.GetString("profile"); len(dir) != 0 {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet)
			jww.INFO.Printf("writing CPU profile to %s\n", dir)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		jww.ERROR.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.symfem.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each operation as it runs")
	rootCmd.PersistentFlags().String("profile", "", "directory to write a CPU profile into")
	mustBind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	mustBind("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".symfem" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".symfem")
	}

	viper.SetEnvPrefix("SYMFEM")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	setVerbosity(viper.GetBool("verbose"))
	if err == nil {
		jww.INFO.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func setVerbosity(verbose bool) {
	if verbose {
		jww.SetStdoutThreshold(jww.LevelInfo)
		return
	}
	jww.SetStdoutThreshold(jww.LevelError)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Errorf("binding flag %s: %w", key, err))
	}
}
