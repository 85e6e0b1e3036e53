package cli

import (
	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
)

var batchCmd = LeafCommand{
	Use:   "batch [FILE]",
	Short: "Compute package family names for a list of identities",
	Example: `  pfn batch apps.yaml
  pfn batch apps.jsonc --output json
  echo '[{"name": "AppName", "publisher": "Publisher Software"}]' | pfn batch`,
	Args: cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		outputFlag,
		{Name: "input-format", Usage: "input format (json, jsonc, yaml); detected from the file extension by default"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		path := "-"
		if len(args) > 0 {
			path = args[0]
		}
		inputFormat, _ := cmd.Flags().GetString("input-format")
		return runBatch(cmd, env, path, inputFormat)
	},
}.Build()

func runBatch(cmd *cobra.Command, env *runEnv, path, inputFormat string) error {
	format := batch.InputFormatFor(path)
	if inputFormat != "" {
		f, err := batch.ParseInputFormat(inputFormat)
		if err != nil {
			return err
		}
		format = f
	}

	reqs, err := batch.ReadFile(path, cmd.InOrStdin(), format)
	if err != nil {
		return err
	}
	env.log.Debug().Str("path", path).Str("format", string(format)).Int("count", len(reqs)).Msg("read identities")

	results := batch.Compute(reqs)
	return batch.Write(cmd.OutOrStdout(), results, env.output)
}
