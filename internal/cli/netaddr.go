package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/netaddr"
	"github.com/mattvp/gobook/internal/term"
)

var netaddrCmd = &cobra.Command{
	Use:   "netaddr",
	Short: "Walk through enums and dispatch",
	Long: `Prints the enum walkthrough: an address-kind type with two
variants, switch-based routing, and lookups that return a value or nothing.`,
	Args: cobra.NoArgs,
	RunE: runNetaddr,
}

func init() {
	rootCmd.AddCommand(netaddrCmd)
}

func runNetaddr(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, term.Heading("Enums and dispatch:"))
	netaddr.Demo(out)
	return nil
}
