package cli

import (
	"fmt"
	"os"

	"github.com/rstms/sdfs"
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "create a directory on the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := mount()
		if err != nil {
			return err
		}
		if !root.Mkdir(args[0]) {
			return Fatalf("mkdir failed: %s", args[0])
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm PATH",
	Short: "remove a file or empty directory from the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := mount()
		if err != nil {
			return err
		}
		if !root.Remove(args[0]) {
			return Fatalf("rm failed: %s", args[0])
		}
		return nil
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists PATH",
	Short: "report whether a path is present on the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := mount()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), root.Exists(args[0]))
		return nil
	},
}

var catCmd = &cobra.Command{
	Use:   "cat PATH",
	Short: "write a card file's contents to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := mount()
		if err != nil {
			return err
		}
		f := root.Open(args[0], sdfs.FileRead)
		defer f.Close()
		if !f.Valid() {
			return Fatalf("cannot open %s: %s", args[0], f.Result())
		}
		if f.IsDirectory() {
			return Fatalf("is a directory: %s", args[0])
		}
		buf := make([]byte, 4096)
		for {
			n := f.Read(buf)
			if n <= 0 {
				break
			}
			cmd.OutOrStdout().Write(buf[:n])
		}
		return nil
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp SRC DST",
	Short: "copy a host file onto the card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		if !IsFile(src) {
			return Fatalf("not a file: %s", src)
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return Fatal(err)
		}
		root, err := mount()
		if err != nil {
			return err
		}
		f := root.Open(dst, sdfs.FileWrite)
		defer f.Close()
		if !f.Valid() {
			return Fatalf("cannot open %s: %s", dst, f.Result())
		}
		if n := f.Write(data); n != len(data) {
			return Fatalf("write count mismatch; expected %d, wrote %d", len(data), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(cpCmd)
}
