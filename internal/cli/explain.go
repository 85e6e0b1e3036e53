package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
	"github.com/russellbanks/package-family-name/internal/crockford"
	"github.com/russellbanks/package-family-name/internal/hashutil"
	"github.com/russellbanks/package-family-name/pfn"
)

var explainCmd = LeafCommand{
	Use:      "explain NAME PUBLISHER",
	Short:    "Show every stage of the package family name computation",
	Args:     cobra.ExactArgs(2),
	StrFlags: []StringFlag{outputFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runExplain(cmd, env, args[0], args[1])
	},
}.Build()

// explanation holds the intermediate values of one computation.
type explanation struct {
	IdentityName      string `json:"identityName" yaml:"identityName"`
	IdentityPublisher string `json:"identityPublisher" yaml:"identityPublisher"`
	UTF16LEBytes      int    `json:"utf16leBytes" yaml:"utf16leBytes"`
	Digest            string `json:"sha256" yaml:"sha256"`
	HashPrefix        string `json:"hashPrefix" yaml:"hashPrefix"`
	Shifted           string `json:"shifted" yaml:"shifted"`
	Groups            []int  `json:"groups" yaml:"groups,flow"`
	PublisherID       string `json:"publisherId" yaml:"publisherId"`
	PackageFamilyName string `json:"packageFamilyName" yaml:"packageFamilyName"`
}

func explainIdentity(name, publisher string) explanation {
	digest := hashutil.SumUTF16LE(publisher)
	prefix := hashutil.Truncate(digest[:])
	hi, lo := crockford.Shift(prefix)
	encoded := crockford.EncodeShifted(hi, lo)

	groups := make([]int, len(encoded))
	for i, c := range encoded {
		groups[i] = strings.IndexByte(crockford.Alphabet, c)
	}

	return explanation{
		IdentityName:      name,
		IdentityPublisher: publisher,
		UTF16LEBytes:      len(hashutil.EncodeUTF16LE(publisher)),
		Digest:            hex.EncodeToString(digest[:]),
		HashPrefix:        hex.EncodeToString(prefix[:]),
		Shifted:           fmt.Sprintf("%x%016x", hi, lo),
		Groups:            groups,
		PublisherID:       string(encoded[:]),
		PackageFamilyName: pfn.Compute(name, publisher),
	}
}

func logStages(log zerolog.Logger, e explanation) {
	log.Debug().Int("bytes", e.UTF16LEBytes).Msg("encoded publisher as utf-16le")
	log.Debug().Str("sha256", e.Digest).Msg("hashed publisher")
	log.Debug().Str("prefix", e.HashPrefix).Str("shifted", e.Shifted).Msg("truncated digest")
	log.Debug().Str("publisher_id", e.PublisherID).Msg("encoded publisher id")
}

func runExplain(cmd *cobra.Command, env *runEnv, name, publisher string) error {
	e := explainIdentity(name, publisher)
	logStages(env.log, e)

	if env.output != batch.FormatText {
		return batch.Encode(cmd.OutOrStdout(), e, env.output)
	}

	groups := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		groups[i] = fmt.Sprintf("%d", g)
	}

	rows := [][2]string{
		{"identity name", Text(e.IdentityName)},
		{"identity publisher", Text(e.IdentityPublisher)},
		{"utf-16le", Text(fmt.Sprintf("%d bytes", e.UTF16LEBytes))},
		{"sha-256", Silent(e.Digest)},
		{"hash prefix", Info(e.HashPrefix)},
		{"shifted", Info(e.Shifted)},
		{"5-bit groups", Silent(strings.Join(groups, " "))},
		{"publisher id", Primary(e.PublisherID)},
		{"family name", Primary(e.PackageFamilyName)},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Label(fmt.Sprintf("%-19s", r[0]+":")), r[1])
	}
	return nil
}
