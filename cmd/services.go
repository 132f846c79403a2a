package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// servicesCmd lists what a scan can discover
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services and resource types the harvester discovers",
	Run: func(cmd *cobra.Command, args []string) {
		renderKinds(os.Stdout, gcpshared.Kinds)
	},
}

func renderKinds(w io.Writer, kinds []gcpshared.Kind) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Service", "Classification", "Resource Type"})

	for _, k := range kinds {
		t.AppendRow(table.Row{k.Service, strings.Join(k.ClassificationPath(), "/"), k.ResourceType})
	}

	t.Render()
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
