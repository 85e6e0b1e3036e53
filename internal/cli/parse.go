package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
	"github.com/russellbanks/package-family-name/pfn"
)

var parseCmd = LeafCommand{
	Use:      "parse FAMILY_NAME",
	Short:    "Split a package family name into identity name and publisher ID",
	Example:  `  pfn parse Microsoft.WindowsTerminal_8wekyb3d8bbwe`,
	Args:     cobra.ExactArgs(1),
	StrFlags: []StringFlag{outputFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runParse(cmd, env, args[0])
	},
}.Build()

type parseResult struct {
	IdentityName string          `json:"identityName" yaml:"identityName"`
	PublisherID  pfn.PublisherID `json:"publisherId" yaml:"publisherId"`
	HashPrefix   string          `json:"hashPrefix" yaml:"hashPrefix"`
}

func runParse(cmd *cobra.Command, env *runEnv, s string) error {
	name, err := pfn.Parse(s)
	if err != nil {
		return err
	}

	prefix := name.PublisherID.HashPrefix()
	result := parseResult{
		IdentityName: name.IdentityName,
		PublisherID:  name.PublisherID,
		HashPrefix:   hex.EncodeToString(prefix[:]),
	}
	env.log.Debug().Str("input", s).Stringer("normalised", name).Msg("parsed family name")

	if env.output != batch.FormatText {
		return batch.Encode(cmd.OutOrStdout(), result, env.output)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s %s\n", Label("identity name:"), Text(result.IdentityName))
	_, _ = fmt.Fprintf(out, "%s %s\n", Label("publisher id: "), Primary(result.PublisherID.String()))
	_, _ = fmt.Fprintf(out, "%s %s\n", Label("hash prefix:  "), Silent(result.HashPrefix))
	return nil
}
