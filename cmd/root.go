package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "A modal text editor for focused writing",
	Long: `Inkwell is a terminal editor for prose, built around modal editing
and a typewriter mode that keeps the current line centered and dims
the surrounding text.

Navigation mode moves with h/j/k/l or the arrow keys, w/b jump by
word, dd deletes a line, u and U undo and redo. Press i to start
typing and Escape to return to navigation. Ctrl+S saves, Ctrl+Q
quits, Ctrl+T toggles typewriter mode.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.inkwell.yaml)")

	rootCmd.AddCommand(editCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".inkwell")
	}

	viper.SetEnvPrefix("inkwell")
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("editor.show_line_numbers", true)
	viper.SetDefault("editor.typewriter_mode", false)
	viper.SetDefault("editor.focus_radius", 0)
}
