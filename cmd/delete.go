package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/dirnav/internal/fsys"
)

var deleteForce bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a file or directory",
	Long: `Delete a file, or a directory with everything in it.

Examples:
  dirnav delete notes.txt          # Delete a single file
  dirnav delete build/             # Delete a directory recursively
  dirnav delete notes.txt --force  # Delete without confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: deletePath,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "force delete without confirmation")
}

func deletePath(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", args[0], err)
	}
	return deleteWithConfirmation(os.Stdin, os.Stdout, fsys.NewOS(), path, deleteForce)
}

// deleteWithConfirmation removes path after a y/N prompt unless force is set
func deleteWithConfirmation(in io.Reader, out io.Writer, gateway *fsys.Gateway, path string, force bool) error {
	// Check if the path exists first
	if !gateway.Exists(path) {
		return fmt.Errorf("%s does not exist", path)
	}

	isDir := gateway.IsDir(path)

	// Ask for confirmation unless --force is used
	if !force {
		prompt := fmt.Sprintf("Are you sure you want to delete '%s'? (y/N): ", path)
		if isDir {
			prompt = fmt.Sprintf("Are you sure you want to delete '%s' and everything in it? This cannot be undone! (y/N): ", path)
		}
		fmt.Fprint(out, prompt)

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Delete cancelled.")
			return nil
		}
	}

	logrus.Infof("Deleting: %s", path)

	if isDir {
		err := gateway.DeleteTree(path)
		if err != nil {
			return fmt.Errorf("failed to delete directory %s: %w", path, err)
		}
	} else {
		err := gateway.DeleteFile(path)
		if err != nil {
			return fmt.Errorf("failed to delete file %s: %w", path, err)
		}
	}

	logrus.Infof("Successfully deleted: %s", path)
	fmt.Fprintf(out, "Deleted: %s\n", path)
	return nil
}
