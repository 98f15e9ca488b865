package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rifat17/libxlsxwriter/pkg/chart"
)

var (
	cfgFile string
	debug   bool
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chartgen",
	Short: "Assemble bar chart XML parts for spreadsheet packages",
	Long: `chartgen assembles the chart XML part that a spreadsheet package embeds
for a clustered bar chart, either from value ranges given on the command
line or from the populated columns of an existing workbook.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chartgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log debug detail about assembly steps.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode. Produce more output about what the program does.")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
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
			log.Fatal(err)
		}

		// Search config in home directory with name ".chartgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chartgen")
	}

	viper.SetEnvPrefix("chartgen")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info("Using config file:", viper.ConfigFileUsed())
	}

	if debug || viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if verbose || viper.GetBool("verbose") {
		verbose = true
	}
}

// writePart assembles the chart part for c to path, or to stdout when path
// is empty.
func writePart(c *chart.Chart, path string) error {
	if path == "" {
		return c.AssembleXML(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := c.AssembleXML(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to assemble chart part: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if verbose {
		log.Infof("Wrote chart part with %d series to %s", c.SeriesCount(), path)
	}
	return nil
}
