package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/classification"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ruleSet is the yaml form of the classifier configuration.
type ruleSet struct {
	Rules []classification.Rule `yaml:"rules"`
	Vague []string              `yaml:"vague"`
}

func rulesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show how questions are routed to topics",
		Long: `Print the keyword rules in priority order. The first rule with a matching
keyword decides the topic; questions matching nothing are answered as general.
Vague questions such as greetings get a clarification prompt instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			classifier, err := classification.NewDefaultClassifier()
			if err != nil {
				return err
			}
			set := ruleSet{
				Rules: classifier.Rules(),
				Vague: classification.DefaultVaguePatterns(),
			}
			return writeRules(cmd.OutOrStdout(), format, set)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, yaml)")
	return cmd
}

func writeRules(w io.Writer, format string, set ruleSet) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		return enc.Close()

	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			cli.TableHeaderStyle.Render("#"),
			cli.TableHeaderStyle.Render("Category"),
			cli.TableHeaderStyle.Render("Keywords"))
		for i, rule := range set.Rules {
			labels := make([]string, 0, len(rule.Keywords))
			for _, k := range rule.Keywords {
				labels = append(labels, k.Label)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, rule.Category, strings.Join(labels, ", "))
		}
		fmt.Fprintf(tw, "-\t%s\t%s\n", "general", cli.SubtleStyle.Render("(everything else)"))
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%s %d vague patterns\n", cli.InfoIcon, len(set.Vague))
		return err

	default:
		return fmt.Errorf("%w: unknown format %q (use table or yaml)", common.ErrInvalidConfig, format)
	}
}
