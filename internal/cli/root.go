// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxN cube reduction engine",
	Long: `nxcube models NxN twisty cubes and reduces big cubes to the 3x3
equivalent: centers unified, edge wings paired, parity defects fixed.

Scramble cubes of any size, run full reductions, and keep a history of
reduction sessions in a local database.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			verbose = true
		}
		if p := viper.GetString("db"); dbPath == "" && p != "" {
			dbPath = p
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	viper.SetEnvPrefix("NXCUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// newLogger builds the logger the engines report through. Non-verbose
// runs keep the engines quiet.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}
