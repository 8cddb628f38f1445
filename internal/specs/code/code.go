// Package code holds the completion spec of the `code` command-line program:
// its flags, their value sources and the generator listing installed extensions.
package code

import (
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
)

// DefaultCLIName is the name the program is usually invoked under
const DefaultCLIName = "code"

// Locales lists the display languages the program ships with
var Locales = []spec.Suggestion{
	{Name: "en", Type: spec.TypeArg, Icon: "🇺🇸", Description: "English (US)"},
	{Name: "zh-CN", Type: spec.TypeArg, Icon: "🇨🇳", Description: "Simplified Chinese"},
	{Name: "zh-TW", Type: spec.TypeArg, Icon: "🇹🇼", Description: "Traditional Chinese"},
	{Name: "fr", Type: spec.TypeArg, Icon: "🇫🇷", Description: "French"},
	{Name: "de", Type: spec.TypeArg, Icon: "🇩🇪", Description: "German"},
	{Name: "it", Type: spec.TypeArg, Icon: "🇮🇹", Description: "Italian"},
	{Name: "es", Type: spec.TypeArg, Icon: "🇪🇸", Description: "Spanish"},
	{Name: "ja", Type: spec.TypeArg, Icon: "🇯🇵", Description: "Japanese"},
	{Name: "ko", Type: spec.TypeArg, Icon: "🇰🇷", Description: "Korean"},
	{Name: "ru", Type: spec.TypeArg, Icon: "🇷🇺", Description: "Russian"},
	{Name: "bg", Type: spec.TypeArg, Icon: "🇧🇬", Description: "Bulgarian"},
	{Name: "hu", Type: spec.TypeArg, Icon: "🇭🇺", Description: "Hungarian"},
	{Name: "pt-br", Type: spec.TypeArg, Icon: "🇧🇷", Description: "Portuguese (Brazil)"},
	{Name: "tr", Type: spec.TypeArg, Icon: "🇹🇷", Description: "Turkish"},
}

// Categories are the extension categories accepted by --category
var Categories = []string{
	"azure",
	"data science",
	"debuggers",
	"extension packs",
	"education",
	"formatters",
	"keymaps",
	"language packs",
	"linters",
	"machine learning",
	"notebooks",
	"programming languages",
	"scm providers",
	"snippets",
	"testing",
	"themes",
	"visualization",
	"other",
}

// LogLevels are the values accepted by --log
var LogLevels = []string{"critical", "error", "warn", "info", "debug", "trace", "off"}

// IntegrationShells are the shells --locate-shell-integration-path knows about
var IntegrationShells = []string{"bash", "fish", "pwsh", "zsh"}

func fileArg(name string) spec.Arg {
	return spec.Arg{Name: name, Template: []spec.Template{spec.TemplateFilepaths}}
}

func folderArg(name string) spec.Arg {
	return spec.Arg{Name: name, Template: []spec.Template{spec.TemplateFolders}}
}

// CommonOptions returns the baseline window and editing flags
func CommonOptions() []spec.Option {
	locales := make([]spec.Suggestion, len(Locales))
	copy(locales, Locales)

	return []spec.Option{
		{
			Names:       spec.Names("-"),
			Description: "Read from stdin (e.g. 'ps aux | grep code | code -')",
		},
		{
			Names:       spec.Names("-d", "--diff"),
			Description: "Compare two files with each other",
			Args:        []spec.Arg{fileArg("file"), fileArg("file")},
		},
		{
			Names: spec.Names("-m", "--merge"),
			Description: "Perform a three-way merge by providing paths for two modified versions of a file, " +
				"the common origin of both modified versions and the output file to save merge results",
			Args: []spec.Arg{fileArg("path1"), fileArg("path2"), fileArg("base"), fileArg("result")},
		},
		{
			Names:       spec.Names("-a", "--add"),
			Description: "Add folder(s) to the last active window",
			Args: []spec.Arg{{
				Name:       "folder",
				Template:   []spec.Template{spec.TemplateFolders},
				IsVariadic: true,
			}},
		},
		{
			Names:       spec.Names("-g", "--goto"),
			Description: "Open a file at the path on the specified line and character position",
			Args:        []spec.Arg{fileArg("file:line[:character]")},
		},
		{
			Names:       spec.Names("-n", "--new-window"),
			Description: "Force to open a new window",
		},
		{
			Names:       spec.Names("-r", "--reuse-window"),
			Description: "Force to open a file or folder in an already opened window",
		},
		{
			Names:       spec.Names("-w", "--wait"),
			Description: "Wait for the files to be closed before returning",
		},
		{
			Names:       spec.Names("--locale"),
			Description: "The locale to use (e.g. en-US or zh-TW)",
			Args:        []spec.Arg{{Name: "locale", Suggestions: locales}},
		},
		{
			Names: spec.Names("--user-data-dir"),
			Description: "Specifies the directory that user data is kept in. " +
				"Can be used to open multiple distinct instances of Code",
			Args: []spec.Arg{folderArg("dir")},
		},
		{
			Names: spec.Names("--profile"),
			Description: "Opens the provided folder or workspace with the given profile and associates the profile " +
				"with the workspace. If the profile does not exist, a new empty one is created. " +
				"A folder or workspace must be provided for the profile to take effect",
			Args: []spec.Arg{{Name: "settingsProfileName"}},
		},
		{
			Names:       spec.Names("-h", "--help"),
			Description: "Print usage",
		},
		{
			Names:       spec.Names("--locate-shell-integration-path"),
			Description: "Print the path to the shell integration script for the provided shell",
			Args: []spec.Arg{{
				Name:        "shell",
				Description: "The shell to locate the integration script for",
				Suggestions: spec.Strings(IntegrationShells...),
			}},
		},
	}
}

// ExtensionManagementOptions returns the flags that list, install and remove extensions.
// cliName is the program name the extension listing generator invokes.
func ExtensionManagementOptions(cliName string) []spec.Option {
	return []spec.Option{
		{
			Names:       spec.Names("--extensions-dir"),
			Description: "Set the root path for extensions",
			Args:        []spec.Arg{folderArg("dir")},
		},
		{
			Names:       spec.Names("--list-extensions"),
			Description: "List the installed extensions",
		},
		{
			Names:       spec.Names("--show-versions"),
			Description: "Show versions of installed extensions, when using --list-extensions",
		},
		{
			Names:       spec.Names("--category"),
			Description: "Filters installed extensions by provided category, when using --list-extensions",
			Args:        []spec.Arg{{Name: "category", Suggestions: spec.Strings(Categories...)}},
		},
		{
			Names: spec.Names("--install-extension"),
			Description: "Installs or updates an extension. The argument is either an extension id or a path to a VSIX. " +
				"The identifier of an extension is '${ publisher }.${ name }'. " +
				"Use '--force' argument to update to latest version. " +
				"To install a specific version provide '@${version}'. For example: 'vscode.csharp@1.2.3'",
			Args: []spec.Arg{{
				Name: "extension-id[@version] | path-to-vsix",
				Generators: []spec.Generator{
					NewExtensionsGenerator(cliName),
					spec.Filepaths(spec.FilepathsOptions{Extensions: []string{"vsix"}}),
				},
			}},
		},
		{
			Names:       spec.Names("--pre-release"),
			Description: "Installs the pre-release version of the extension, when using --install-extension",
		},
		{
			Names:       spec.Names("--uninstall-extension"),
			Description: "Uninstalls an extension",
			Args: []spec.Arg{{
				Name:       "extension-id",
				Generators: []spec.Generator{NewExtensionsGenerator(cliName)},
			}},
		},
		{
			Names: spec.Names("--enable-proposed-api"),
			Description: "Enables proposed API features for extensions. " +
				"Can receive one or more extension IDs to enable individually",
		},
	}
}

// TroubleshootingOptions returns the diagnostic flags
func TroubleshootingOptions(cliName string) []spec.Option {
	return []spec.Option{
		{
			Names:       spec.Names("-v", "--version"),
			Description: "Print version",
		},
		{
			Names:       spec.Names("--verbose"),
			Description: "Print verbose output (implies --wait)",
		},
		{
			Names:       spec.Names("--log"),
			Description: "Log level to use. Default is 'info' when unspecified",
			Args: []spec.Arg{{
				Name:        "level",
				Default:     "info",
				Suggestions: spec.Strings(LogLevels...),
			}},
		},
		{
			Names:       spec.Names("-s", "--status"),
			Description: "Print process usage and diagnostics information",
		},
		{
			Names:       spec.Names("--prof-startup"),
			Description: "Run CPU profiler during startup",
		},
		{
			Names:       spec.Names("--disable-extensions"),
			Description: "Disable all installed extensions",
		},
		{
			Names:       spec.Names("--disable-extension"),
			Description: "Disable an extension",
			Args: []spec.Arg{{
				Name:       "extension-id",
				Generators: []spec.Generator{NewExtensionsGenerator(cliName)},
			}},
		},
		{
			Names:       spec.Names("--sync"),
			Description: "Turn sync on or off",
			Args: []spec.Arg{{
				Name:        "sync",
				Description: "Whether to enable sync",
				Suggestions: spec.Strings("on", "off"),
			}},
		},
		{
			Names: spec.Names("--inspect-extensions"),
			Description: "Allow debugging and profiling of extensions. " +
				"Check the developer tools for the connection URI",
			Args: []spec.Arg{{Name: "port"}},
		},
		{
			Names: spec.Names("--inspect-brk-extensions"),
			Description: "Allow debugging and profiling of extensions with the extension host being paused after start. " +
				"Check the developer tools for the connection URI",
			Args: []spec.Arg{{Name: "port"}},
		},
		{
			Names:       spec.Names("--disable-gpu"),
			Description: "Disable GPU hardware acceleration",
		},
		{
			Names:       spec.Names("--max-memory"),
			Description: "Max memory size for a window (in Mbytes)",
			Args:        []spec.Arg{{Name: "memory", Description: "Memory in megabytes"}},
		},
		{
			Names:       spec.Names("--telemetry"),
			Description: "Shows all telemetry events which VS code collects",
		},
	}
}

// NewSpec builds the full spec for the program invoked as cliName.
// Groups are concatenated in display order: common, extension management, troubleshooting.
func NewSpec(cliName string) *spec.Spec {
	if cliName == "" {
		cliName = DefaultCLIName
	}

	var options []spec.Option
	options = append(options, CommonOptions()...)
	options = append(options, ExtensionManagementOptions(cliName)...)
	options = append(options, TroubleshootingOptions(cliName)...)

	return &spec.Spec{
		Name:        cliName,
		Description: "Visual Studio Code",
		Args: []spec.Arg{{
			Template:   []spec.Template{spec.TemplateFilepaths, spec.TemplateFolders},
			IsVariadic: true,
		}},
		Options: options,
	}
}
