package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
	"github.com/russellbanks/package-family-name/pfn"
)

var idCmd = LeafCommand{
	Use:      "id PUBLISHER",
	Aliases:  []string{"publisher-id"},
	Short:    "Compute the publisher ID of an identity publisher",
	Example:  `  pfn id "CN=Contoso Software, O=Contoso Corporation, C=US"`,
	Args:     cobra.ExactArgs(1),
	StrFlags: []StringFlag{outputFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runID(cmd, env, args[0])
	},
}.Build()

type idResult struct {
	Publisher   string          `json:"publisher" yaml:"publisher"`
	PublisherID pfn.PublisherID `json:"publisherId" yaml:"publisherId"`
}

func runID(cmd *cobra.Command, env *runEnv, publisher string) error {
	id := pfn.PublisherIDOf(publisher)
	env.log.Debug().Str("publisher", publisher).Stringer("publisher_id", id).Msg("computed publisher id")

	if env.output != batch.FormatText {
		return batch.Encode(cmd.OutOrStdout(), idResult{Publisher: publisher, PublisherID: id}, env.output)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Primary(id.String()))
	return nil
}
