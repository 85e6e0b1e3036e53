package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:", "Examples:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  compute     Compute the package family name ..."
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -o, --output string   output format ..."
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// "  pfn compute AppName ..." inside Examples
	exampleLineRe = regexp.MustCompile(`^ {2}(pfn|echo) `)
	// `Use "pfn [command] --help" for more information about a command.`
	footerRe = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's usage text through the CLI color helpers.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		} else if cmd.Short != "" {
			buf.WriteString(cmd.Short + "\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		lines := strings.Split(buf.String(), "\n")
		var result strings.Builder
		for _, line := range lines {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)

	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	case exampleLineRe.MatchString(line):
		return Silent(line)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
