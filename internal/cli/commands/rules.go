package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/lintpass/internal/render"
	"github.com/leapstack-labs/lintpass/pkg/core"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group string // Filter by group
	Docs  bool   // Show full documentation
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List the built-in lint rules with their documentation.

Rules are organized by group (e.g., arithmetic, calls) and listed in the
order the engine runs them. Use --docs to include descriptions and rationale.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - json, yaml, table: via --format`,
		Example: `  # List all rules
  lintpass rules

  # Show details for a specific rule
  lintpass rules AR01

  # List rules in the calls group
  lintpass rules --group calls

  # Output as JSON
  lintpass rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Docs, "docs", "d", false, "Show full documentation")

	return cmd
}

func ruleInfos() ([]core.RuleInfo, error) {
	reg, err := rules.NewRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Infos(), nil
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r, err := NewCommandContext(cmd).Renderer(cmd)
	if err != nil {
		return err
	}

	infos, err := ruleInfos()
	if err != nil {
		return err
	}
	infos = filterRulesByGroup(infos, opts.Group)

	// Group, keeping registry order within a group.
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].Group < infos[j].Group })

	switch r.EffectiveMode() {
	case render.ModeJSON:
		return listRulesJSON(r, infos)
	case render.ModeYAML:
		return listRulesYAML(r, infos)
	case render.ModeTable:
		return listRulesTable(r, infos)
	case render.ModeMarkdown:
		return listRulesMarkdown(r, infos, opts.Docs)
	default:
		return listRulesText(r, infos, opts.Docs)
	}
}

func filterRulesByGroup(infos []core.RuleInfo, group string) []core.RuleInfo {
	if group == "" {
		return infos
	}
	var filtered []core.RuleInfo
	for _, info := range infos {
		if info.Group == group {
			filtered = append(filtered, info)
		}
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, _ *RulesOptions) error {
	r, err := NewCommandContext(cmd).Renderer(cmd)
	if err != nil {
		return err
	}

	infos, err := ruleInfos()
	if err != nil {
		return err
	}
	var rule *core.RuleInfo
	for i := range infos {
		if strings.EqualFold(infos[i].ID, ruleID) || infos[i].Name == ruleID {
			rule = &infos[i]
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case render.ModeJSON:
		return showRuleJSON(r, rule)
	case render.ModeYAML:
		return showRuleYAML(r, rule)
	case render.ModeMarkdown, render.ModeTable:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *render.Renderer, infos []core.RuleInfo, docs bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(infos))))
	r.Println("")

	currentGroup := ""
	for _, rule := range infos {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Bold.Render("  " + groupTitle(currentGroup)))
		}

		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(rule.ID),
			rule.Name,
			styles.Severity(rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
		)

		if docs {
			r.Println(styles.Muted.Render("        " + rule.Description))
			if rule.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + truncateOneLine(rule.Rationale, 80)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'lintpass rules <rule-id>' for detailed documentation"))
	r.Println("")
	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *render.Renderer, infos []core.RuleInfo, docs bool) error {
	r.Println("# Lint Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range infos {
		if rule.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = rule.Group
			r.Println("## " + groupTitle(currentGroup))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.DefaultSeverity.String())
		if docs {
			r.Println("  " + rule.Description)
			if rule.Rationale != "" {
				r.Println("  > " + strings.ReplaceAll(rule.Rationale, "\n", " "))
			}
		}
	}

	r.Println("")
	return nil
}

// RulesOutput is the json and yaml output structure for rules listing.
type RulesOutput struct {
	Rules []core.RuleInfo `json:"rules" yaml:"rules"`
	Count int             `json:"count" yaml:"count"`
}

func listRulesJSON(r *render.Renderer, infos []core.RuleInfo) error {
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(RulesOutput{Rules: nonNil(infos), Count: len(infos)})
}

func listRulesYAML(r *render.Renderer, infos []core.RuleInfo) error {
	enc := yaml.NewEncoder(r.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(RulesOutput{Rules: nonNil(infos), Count: len(infos)}); err != nil {
		return err
	}
	return enc.Close()
}

func listRulesTable(r *render.Renderer, infos []core.RuleInfo) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Expanded", "Description"})
	for _, rule := range infos {
		t.AppendRow(table.Row{rule.ID, rule.Name, rule.Group, rule.DefaultSeverity.String(), rule.ExaminesExpanded, rule.Description})
	}
	t.Render()
	return nil
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *render.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Message"), rule.Message)
	if rule.ExaminesExpanded {
		r.Printf("  %s: %s\n", styles.Bold.Render("Expanded code"), "checked")
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(rule.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *render.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Message:** %s\n\n", rule.Group, rule.DefaultSeverity.String(), rule.Message)
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```go")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```go")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	return nil
}

func showRuleJSON(r *render.Renderer, rule *core.RuleInfo) error {
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(rule)
}

func showRuleYAML(r *render.Renderer, rule *core.RuleInfo) error {
	enc := yaml.NewEncoder(r.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(rule); err != nil {
		return err
	}
	return enc.Close()
}

// Helper functions

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

var titleCaser = cases.Title(language.English)

func groupTitle(group string) string {
	return titleCaser.String(strings.ReplaceAll(group, "_", " "))
}

func nonNil(infos []core.RuleInfo) []core.RuleInfo {
	if infos == nil {
		return []core.RuleInfo{}
	}
	return infos
}
