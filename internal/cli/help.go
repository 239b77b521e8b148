package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/jirascope/internal/configloader"
	"github.com/yaklabco/jirascope/internal/ui/pretty"
	"github.com/yaklabco/jirascope/pkg/config"
)

// columnGap separates a name column from its description.
const columnGap = "   "

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if not .HasParent}}

{{ heading "Environment:" }}
{{ environment }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + usageTemplate

// applyHelp installs styled help and usage output on cmd and, through
// cobra's inheritance, on every subcommand. Styling follows the --color
// flag as parsed for the command being described.
func applyHelp(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return renderHelp(c, usageTemplate)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := renderHelp(c, helpTemplate); err != nil {
			c.PrintErrln(err)
		}
	})
}

func renderHelp(cmd *cobra.Command, text string) error {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(helpColor(cmd), out))

	tmpl, err := template.New("help").Funcs(helpFuncs(styles)).Parse(text)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	return tmpl.Execute(out, cmd)
}

func helpColor(cmd *cobra.Command) config.ColorMode {
	if flag := cmd.Flag("color"); flag != nil {
		return config.ColorMode(flag.Value.String())
	}
	return config.ColorAuto
}

func helpFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading": styles.SummaryTitle.Render,
		"command": styles.Bold.Render,
		"name":    styles.Info.Render,
		"dim":     styles.Dim.Render,
		"join":    strings.Join,
		"rpad":    rpad,
		"trim":    trimTrailingWhitespace,
		"flags": func(flags *pflag.FlagSet) string {
			return flagColumns(styles, flags)
		},
		"environment": func() string {
			return envColumns(styles, configloader.ListEnvVars())
		},
	}
}

// flagColumns lists the visible flags of set as aligned "names  usage"
// rows. Flag types are dimmed and non-zero defaults appended.
func flagColumns(styles *pretty.Styles, set *pflag.FlagSet) string {
	type row struct {
		names, kind, usage string
	}

	var rows []row
	width := 0
	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		names := "    --" + flag.Name
		if flag.Shorthand != "" {
			names = "-" + flag.Shorthand + ", --" + flag.Name
		}
		kind, usage := pflag.UnquoteUsage(flag)
		if def := flagDefault(flag); def != "" {
			usage += " (default " + def + ")"
		}

		rows = append(rows, row{names: names, kind: kind, usage: usage})
		width = max(width, len(names)+len(kind)+1)
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		left := styles.Info.Render(r.names)
		plain := len(r.names)
		if r.kind != "" {
			left += " " + styles.Dim.Render(r.kind)
			plain += 1 + len(r.kind)
		}
		lines = append(lines, "  "+left+strings.Repeat(" ", width-plain)+columnGap+r.usage)
	}
	return strings.Join(lines, "\n")
}

// flagDefault formats the default of flag for help, or returns "" when it
// is the zero value of its type.
func flagDefault(flag *pflag.Flag) string {
	switch flag.DefValue {
	case "", "false", "0", "[]":
		return ""
	}
	if flag.Value.Type() == "string" {
		return fmt.Sprintf("%q", flag.DefValue)
	}
	return flag.DefValue
}

// envColumns lists the JIRASCOPE_* variables that override configuration.
func envColumns(styles *pretty.Styles, vars []configloader.EnvVar) string {
	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, "  "+styles.Info.Render(rpad(v.Name, width))+columnGap+v.Description)
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
