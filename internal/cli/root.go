// Package cli implements the modulemd-validate CLI commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "modulemd-validate",
	Short: "Validate, upgrade, and merge module stream documents",
	Long: `modulemd-validate loads module stream YAML documents (modulemd,
modulemd-defaults, modulemd-translations, modulemd-obsoletes, and
modulemd-packager subdocuments) into a ModuleIndex and reports any
validation failures.

Examples:
  modulemd-validate validate ./bash.yaml
  modulemd-validate upgrade --to 3 ./bash.yaml
  modulemd-validate merge --priority 0 base.yaml --priority 1 override.yaml`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.modulemd-validate/config.yaml)")
	rootCmd.PersistentFlags().Bool("strict", true, "reject unknown YAML keys instead of skipping them")
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.SetEnvPrefix("MODULEMD_VALIDATE")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newUpgradeCmd())
	rootCmd.AddCommand(newMergeCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.modulemd-validate")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}
	_ = viper.ReadInConfig()
}

func strictFlag() bool {
	return viper.GetBool("strict")
}
