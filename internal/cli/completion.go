package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a flag for shell completion. Every generator
// reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long name without "--"
	Short     string   // short name without "-"
	Help      string   // description
	Values    []string // suggested values; nil for booleans and free values
	ValueName string   // value label in zsh, empty for booleans
	IsFile    bool     // the value is a path
	IsAlgo    bool     // the values are the algorithm names
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "algo", Help: "Division algorithm", IsAlgo: true, ValueName: "algorithm"},
	{Long: "workers", Help: "Goroutines for the primes sweep", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "dc-threshold", Help: "Divide-and-conquer division threshold in words", ValueName: "words"},
	{Long: "barrett-threshold", Help: "Barrett division threshold in words", ValueName: "words"},
	{Long: "barrett-balance-threshold", Help: "Barrett divisor threshold in words", ValueName: "words"},
	{Long: "inv-newton-threshold", Help: "Newton inverse threshold in words", ValueName: "words"},
	{Long: "karatsuba-threshold", Help: "Karatsuba multiplication threshold in words", ValueName: "words"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus metrics output file", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "orange", "none"}, ValueName: "theme"},
	{Long: "verbose", Short: "v", Help: "Full values and run details"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "quick", Help: "Faster, coarser calibration"},
	{Long: "chart", Help: "Calibration chart HTML file", IsFile: true, ValueName: "file"},
}

// Shells lists the shells GenerateCompletion supports.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateCompletion writes a completion script for shell. commands are
// completed in first position, algorithms after --algo.
func GenerateCompletion(out io.Writer, shell string, commands, algorithms []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(commands, algorithms)
	case "zsh":
		script = zshCompletion(commands, algorithms)
	case "fish":
		script = fishCompletion(commands, algorithms)
	case "powershell", "ps":
		script = powerShellCompletion(commands, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(Shells, ", "))
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(commands, algorithms []string) string {
	var opts []string
	var cases strings.Builder
	var files []string
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
		switch {
		case f.IsFile:
			files = append(files, flagNames(f)...)
		case f.IsAlgo:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"${algorithms}\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(flagNames(f), "|"))
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(flagNames(f), "|"), strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(files, "|"))
	}
	fmt.Fprintf(&cases, "        completion)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
		strings.Join(Shells, " "))

	return fmt.Sprintf(`# Bash completion script for natcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_natcalc_completions() {
    local cur prev opts commands algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    commands="%s"
    algorithms="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
}

complete -F _natcalc_completions natcalc
`, strings.Join(opts, " "), strings.Join(commands, " "), strings.Join(algorithms, " "), cases.String())
}

func zshCompletion(commands, algorithms []string) string {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef natcalc

# Zsh completion script for natcalc
# Add this to your ~/.zshrc or place in $fpath

_natcalc() {
    local -a algorithms commands
    algorithms=(%s)
    commands=(%s)

    _arguments -s \
%s \
        '1:command:($commands)' \
        '*::operand:'
}

_natcalc "$@"
`, strings.Join(algorithms, " "), strings.Join(commands, " "), strings.Join(args, " \\\n"))
}

func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func fishCompletion(commands, algorithms []string) string {
	lines := []string{
		"# Fish completion script for natcalc",
		"# Add this to ~/.config/fish/completions/natcalc.fish",
		"",
		"complete -c natcalc -f",
		"",
		"# Commands",
		fmt.Sprintf("complete -c natcalc -n '__fish_use_subcommand' -xa '%s'", strings.Join(commands, " ")),
		fmt.Sprintf("complete -c natcalc -n '__fish_seen_subcommand_from completion' -xa '%s'", strings.Join(Shells, " ")),
		"",
		"# Flags",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c natcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case f.IsAlgo:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(algorithms, " ")))
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func psList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

func powerShellCompletion(commands, algorithms []string) string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		values := f.Values
		if f.IsAlgo {
			values = algorithms
		}
		if len(values) == 0 {
			continue
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, psList(values)))
	}

	return fmt.Sprintf(`# PowerShell completion script for natcalc
# Add this to your $PROFILE

$natcalcCommands = @(%s)

Register-ArgumentCompleter -CommandName 'natcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -gt 2) { $prevElement = $elements[-2].ToString() }

    switch ($prevElement) {
%s
    }

    if ($wordToComplete -like '-*') {
        $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
        }
        return
    }
    $natcalcCommands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'Command', $_)
    }
}
`, psList(commands), strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
