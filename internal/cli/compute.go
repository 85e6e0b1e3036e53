package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
)

var computeCmd = LeafCommand{
	Use:   "compute [NAME] [PUBLISHER]",
	Short: "Compute the package family name of an identity",
	Example: `  pfn compute AppName "Publisher Software"
  pfn compute Contoso.App "CN=Contoso" --output json`,
	Args:     cobra.MaximumNArgs(2),
	StrFlags: []StringFlag{outputFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		var prompt PromptFunc
		if env.cfg.Interactive && isInteractive(cmd.InOrStdin()) {
			prompt = NewPromptFunc()
		}
		return runCompute(cmd, env, prompt, args)
	},
}.Build()

// runCompute computes a family name from args, asking for missing arguments
// when prompt is non-nil.
func runCompute(cmd *cobra.Command, env *runEnv, prompt PromptFunc, args []string) error {
	name, publisher, err := resolveIdentity(prompt, args)
	if err != nil {
		return err
	}

	if env.log.GetLevel() <= zerolog.DebugLevel {
		logStages(env.log, explainIdentity(name, publisher))
	}

	result := batch.Compute([]batch.Request{{Name: name, Publisher: publisher}})[0]
	if env.output != batch.FormatText {
		return batch.Encode(cmd.OutOrStdout(), result, env.output)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Primary(result.PackageFamilyName.String()))
	return nil
}

func resolveIdentity(prompt PromptFunc, args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	if prompt == nil {
		return "", "", errors.New("identity name and publisher are required (run in a terminal to be prompted)")
	}

	values := append([]string{}, args...)
	for _, title := range []string{"Identity name", "Identity publisher"}[len(args):] {
		v, err := prompt(title)
		if err != nil {
			return "", "", err
		}
		values = append(values, v)
	}
	return values[0], values[1], nil
}
