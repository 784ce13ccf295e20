package cli

import (
	"github.com/rstms/sdfs"
	"github.com/rstms/sdfs/fatfs"
	"github.com/rstms/sdfs/sd"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sdfs",
	Short: "path-based access to a card image directory",
	Long: `sdfs treats a host directory as a mounted SD card and exposes
path-based file and directory operations against it: listing, create,
remove, and file transfer.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("root", "", "card image directory")
	viper.SetEnvPrefix("SDFS")
	viper.AutomaticEnv()
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.SetDefault("root", ".")
}

// mount builds a filesystem root over the configured card image
// directory.
func mount() (*sd.Root, error) {
	dir := viper.GetString("root")
	base := afero.NewBasePathFs(afero.NewOsFs(), dir)
	root := sd.New(fatfs.NewCard(), fatfs.New(base))
	if !root.Begin(sdfs.DetectNone) {
		return nil, Fatalf("mount failed: %s", dir)
	}
	return root, nil
}
