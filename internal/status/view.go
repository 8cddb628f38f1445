package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	sections := []string{
		renderHeader(data),
		renderProgram(data),
		renderConfig(data),
		renderSpec(data),
		renderCache(data),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func line(key, value string) string {
	return "   " + keyStyle.Render(key+": ") + value + "\n"
}

func renderHeader(data *Data) string {
	return titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version)
}

func renderProgram(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Program:") + "\n")
	b.WriteString(line("Name", valueStyle.Render(data.Program)))

	if data.ProgramFound {
		b.WriteString(line("Path", successStyle.Render("✓ ")+subtleStyle.Render(data.ProgramPath)))
	} else {
		b.WriteString(line("Path", errorStyle.Render("✗ Not found in PATH")))
		b.WriteString("   " + subtleStyle.Render("Extension suggestions will be empty"))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration:") + "\n")

	switch {
	case data.ConfigPath == "":
		b.WriteString(line("File", subtleStyle.Render("none, using defaults")))
		for _, path := range data.ConfigSearched {
			b.WriteString("      " + subtleStyle.Render(path) + "\n")
		}
	case data.ConfigExplicit:
		b.WriteString(line("File", subtleStyle.Render(data.ConfigPath+" (explicit)")))
	default:
		b.WriteString(line("File", subtleStyle.Render(data.ConfigPath)))
	}

	b.WriteString(line("Log level", valueStyle.Render(data.LogLevel)))
	b.WriteString(line("Output format", valueStyle.Render(data.OutputFormat)))
	b.WriteString(line("Generator timeout", valueStyle.Render(data.Timeout.String())))
	b.WriteString(line("Output cap", valueStyle.Render(humanize.IBytes(uint64(data.MaxOutput)))))

	return strings.TrimSuffix(b.String(), "\n")
}

func renderSpec(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🧩 Spec:") + "\n")
	b.WriteString(line("Program", valueStyle.Render(data.SpecName)))
	b.WriteString(line("Options", valueStyle.Render(fmt.Sprintf("%d (%d tokens)", data.OptionCount, data.TokenCount))))
	if len(data.GeneratorSites) > 0 {
		b.WriteString(line("Generators", valueStyle.Render(strings.Join(data.GeneratorSites, ", "))))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderCache(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("💾 Cache:") + "\n")

	if !data.CacheEnabled {
		b.WriteString(line("Status", subtleStyle.Render("disabled (cache.ttl is 0)")))
	} else {
		b.WriteString(line("Status", successStyle.Render("✓ enabled")+subtleStyle.Render(" (ttl "+data.CacheTTL.String()+")")))
	}
	b.WriteString(line("Path", subtleStyle.Render(data.CachePath)))

	if data.Cache == nil {
		b.WriteString("   " + subtleStyle.Render("Cache not created yet"))
		return b.String()
	}

	b.WriteString(line("Size", valueStyle.Render(humanize.IBytes(uint64(data.Cache.Size)))))
	b.WriteString(line("Entries", valueStyle.Render(fmt.Sprintf("%d", len(data.Cache.Commands)))))
	if !data.Cache.Newest.IsZero() {
		b.WriteString(line("Updated", valueStyle.Render(data.Cache.Newest.Format("2006-01-02 15:04:05"))))
	}
	for _, cmd := range data.Cache.Commands {
		b.WriteString("      " + subtleStyle.Render(truncateString(cmd, 72)) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
