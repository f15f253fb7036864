// Package render formats resolved configurations and the directive table
// for terminal output. Styling is applied only when requested; callers
// gate it on IsTerminal so piped output stays plain.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/hostbridge/appgate/internal/confhost"
	"github.com/hostbridge/appgate/pkg/gateconf"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Result renders the resolved configuration report.
func Result(res *confhost.Result, styled bool) string {
	var b strings.Builder
	for i := range res.Servers {
		srv := &res.Servers[i]
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style(styled, titleStyle, "server "+srv.Name) + "\n")
		writeKV(&b, styled, 1, "ruby", srv.Config.Ruby)
		writeKV(&b, styled, 1, "root", srv.Config.Root)
		writeKV(&b, styled, 1, "log_level", fmt.Sprint(srv.Config.LogLevel))
		writeKV(&b, styled, 1, "max_pool_size", fmt.Sprint(srv.Config.MaxPoolSize))
		writeKV(&b, styled, 1, "max_instances_per_app", fmt.Sprint(srv.Config.MaxInstancesPerApp))
		writeKV(&b, styled, 1, "pool_idle_time", fmt.Sprint(srv.Config.PoolIdleTime))
		writeKV(&b, styled, 1, "user_switching", fmt.Sprint(srv.Config.UserSwitching))
		writeKV(&b, styled, 1, "default_user", srv.Config.DefaultUser)
		writeDir(&b, styled, 1, &srv.Root)
	}
	return b.String()
}

func writeDir(b *strings.Builder, styled bool, depth int, d *confhost.DirReport) {
	b.WriteString(indent(depth) + style(styled, titleStyle, "location "+d.Path) + "\n")
	kv := depth + 1
	writeKV(b, styled, kv, "enabled", fmt.Sprint(d.Config.Enabled))
	writeKV(b, styled, kv, "rails_env", d.Config.RailsEnv)
	writeKV(b, styled, kv, "rack_env", d.Config.RackEnv)
	writeKV(b, styled, kv, "app_root", d.Config.AppRoot)
	writeKV(b, styled, kv, "spawn_method", d.Config.SpawnMethod)
	writeKV(b, styled, kv, "framework_spawner_idle_time", fmt.Sprint(d.Config.FrameworkSpawnerIdleTime))
	writeKV(b, styled, kv, "app_spawner_idle_time", fmt.Sprint(d.Config.AppSpawnerIdleTime))
	writeKV(b, styled, kv, "max_requests", fmt.Sprint(d.Config.MaxRequests))
	writeKV(b, styled, kv, "memory_limit", fmt.Sprint(d.Config.MemoryLimit))
	writeKV(b, styled, kv, "high_performance", fmt.Sprint(d.Config.HighPerformance))
	writeKV(b, styled, kv, "use_global_queue", fmt.Sprint(d.Config.UseGlobalQueue))
	writeKV(b, styled, kv, "rails_auto_detect", fmt.Sprint(d.Config.AutoDetectRails))
	writeKV(b, styled, kv, "rack_auto_detect", fmt.Sprint(d.Config.AutoDetectRack))
	writeKV(b, styled, kv, "wsgi_auto_detect", fmt.Sprint(d.Config.AutoDetectWSGI))
	writeKV(b, styled, kv, "rails_allow_rewrite", fmt.Sprint(d.Config.AllowRewriteRules))
	writeKV(b, styled, kv, "rails_base_uris", joinOrDash(d.Config.RailsBaseURIs))
	writeKV(b, styled, kv, "rack_base_uris", joinOrDash(d.Config.RackBaseURIs))
	for i := range d.Children {
		writeDir(b, styled, depth+1, &d.Children[i])
	}
}

// DirectivesTable renders the directive registry as an aligned table.
func DirectivesTable(ds []*gateconf.Directive, styled bool) string {
	nameW, ctxW := len("DIRECTIVE"), len("CONTEXT")
	for _, d := range ds {
		nameW = max(nameW, len(d.Name))
		ctxW = max(ctxW, len(d.Contexts.String()))
	}

	var b strings.Builder
	header := fmt.Sprintf("%-*s  %-4s  %-*s  %s", nameW, "DIRECTIVE", "ARG", ctxW, "CONTEXT", "HELP")
	b.WriteString(style(styled, headerStyle, header) + "\n")
	for _, d := range ds {
		arg := "str"
		if d.Kind == gateconf.FlagArg {
			arg = "flag"
		}
		help := d.Help
		switch {
		case d.Obsolete:
			help = style(styled, badgeStyle, "[obsolete] ") + help
		case d.AliasFor != "":
			help = style(styled, badgeStyle, "[deprecated] ") + help
		}
		fmt.Fprintf(&b, "%-*s  %-4s  %-*s  %s\n", nameW, d.Name, arg, ctxW, d.Contexts.String(), help)
	}
	return b.String()
}

func writeKV(b *strings.Builder, styled bool, depth int, key, val string) {
	if val == "" {
		val = style(styled, mutedStyle, "-")
	}
	fmt.Fprintf(b, "%s%s = %s\n", indent(depth), style(styled, labelStyle, key), val)
}

func joinOrDash(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return strings.Join(vals, ", ")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func style(styled bool, s lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
