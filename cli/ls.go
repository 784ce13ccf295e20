package cli

import (
	"github.com/rstms/sdfs"
	"github.com/rstms/sdfs/sd"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var lsCmd = &cobra.Command{
	Use:   "ls [PATH]",
	Short: "list directory contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// flag values outlive Execute; reset so the next
		// invocation starts from the defaults
		defer cmd.Flags().Visit(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
		root, err := mount()
		if err != nil {
			return err
		}
		path := "/"
		if len(args) > 0 {
			path = args[0]
		}
		dir := root.Open(path, sdfs.FileRead)
		defer dir.Close()
		if !dir.Valid() {
			return Fatalf("cannot open %s: %s", path, dir.Result())
		}
		if !dir.IsDirectory() {
			return Fatalf("not a directory: %s", path)
		}
		var flags uint8
		if date, _ := cmd.Flags().GetBool("date"); date {
			flags |= sd.LsDate
		}
		if size, _ := cmd.Flags().GetBool("size"); size {
			flags |= sd.LsSize
		}
		if recursive, _ := cmd.Flags().GetBool("recursive"); recursive {
			flags |= sd.LsRecurse
		}
		dir.Ls(flags, 0, sdfs.NewWriterSink(cmd.OutOrStdout()))
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolP("date", "d", false, "show modification date and time")
	lsCmd.Flags().BoolP("size", "s", false, "show file sizes")
	lsCmd.Flags().BoolP("recursive", "R", false, "descend into subdirectories")
	rootCmd.AddCommand(lsCmd)
}
