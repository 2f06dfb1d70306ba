package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/dirnav/internal/config"
	"github.com/HaiFongPan/dirnav/internal/keys"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the active key bindings",
	Long: `Show the key binding of every action as loaded from the configuration.
F5 always reloads and the arrow keys always move the selection, whatever
the table says.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeKeyTable(os.Stdout, GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func writeKeyTable(out io.Writer, cfg *config.Config) error {
	resolver := keys.NewResolver(cfg.Keys.Table())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tKEY")
	for _, action := range keys.Actions() {
		binding := resolver.Binding(action)
		if binding == "" {
			binding = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", action, binding)
	}
	return w.Flush()
}
