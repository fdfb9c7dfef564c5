package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AutoGuard/autoguard/internal/completion"
	"github.com/AutoGuard/autoguard/internal/config"
	"github.com/AutoGuard/autoguard/internal/hook"
	"github.com/AutoGuard/autoguard/internal/logger"
	"github.com/AutoGuard/autoguard/internal/rules"
	"github.com/AutoGuard/autoguard/internal/settings"
	"github.com/AutoGuard/autoguard/internal/ui"
)

// Version is set at build time via ldflags: -X main.Version=x.y.z
var Version = "1.0.0"

var log = logger.New("main")

func main() {
	// Shell completion handling: if COMP_LINE is set the binary was invoked
	// by the shell, not the user.
	if completion.Run() {
		return
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hook":
			runHook()
			return
		case "check":
			runCheck(os.Args[2:])
			return
		case "list-rules":
			runListRules(os.Args[2:])
			return
		case "lint-rules":
			runLintRules(os.Args[2:])
			return
		case "install":
			runInstall(os.Args[2:])
			return
		case "uninstall":
			runUninstall(os.Args[2:])
			return
		case "completion":
			runCompletion(os.Args[2:])
			return
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-v", "--version":
			fmt.Printf("autoguard version %s\n", Version)
			return
		}
	}

	// No subcommand - show help
	printUsage()
}

// loadConfig loads the config file, applies env overrides, and returns the
// result. Errors fall back to defaults: the CLI must work without a config
// file and the hook must work even with a broken one.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Warn("using default config: %v", err)
		cfg = config.DefaultConfig()
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Warn("ignoring environment overrides: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("using default config: %v", err)
		cfg = config.DefaultConfig()
	}

	logger.SetGlobalLevelFromString(string(cfg.Hook.LogLevel))
	if cfg.Hook.NoColor {
		logger.SetColored(false)
		ui.SetPlainMode(true)
	}
	return cfg
}

// buildEngine creates the classification engine: builtin groups plus any
// user rules from the rules directory.
func buildEngine(cfg *config.Config) *rules.Engine {
	if cfg.Rules.DisableUser {
		return rules.NewEngine()
	}

	dir := cfg.Rules.UserDir
	if dir == "" {
		dir = rules.DefaultUserRulesDir()
	}

	userRules, err := rules.NewLoader(dir).LoadUser()
	if err != nil {
		log.Warn("skipping user rules: %v", err)
		return rules.NewEngine()
	}
	return rules.NewEngineWithRules(userRules)
}

// runHook handles one PreToolUse invocation. This path owns stdout: nothing
// here may print except the decision JSON, and the exit status is zero on
// every path including internal failure.
func runHook() {
	cfg := loadConfig()
	hook.NewRunner(buildEngine(cfg), os.Stdin, os.Stdout).Run()
	os.Exit(0)
}

// runCheck classifies a command given on the command line. Unlike the hook
// path this is for humans: styled verdict on stdout, exit 1 on block so it
// composes in scripts.
func runCheck(args []string) {
	checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
	jsonOutput := checkFlags.Bool("json", false, "Output the raw match result as JSON")
	_ = checkFlags.Parse(args)

	cmd := strings.Join(checkFlags.Args(), " ")
	if cmd == "" {
		fmt.Fprintln(os.Stderr, "Usage: autoguard check [--json] <command>")
		os.Exit(1)
	}

	cfg := loadConfig()
	res := buildEngine(cfg).Classify(cmd)

	if *jsonOutput {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		if res.Matched {
			os.Exit(1)
		}
		return
	}

	if res.Matched {
		ui.PrintBlocked(fmt.Sprintf("%s (%s/%s)", res.Message, res.Category, res.RuleName))
		os.Exit(1)
	}
	ui.PrintSuccess("allowed")
}

// runListRules prints every builtin detection by category, then the active
// user rules.
func runListRules(args []string) {
	listFlags := flag.NewFlagSet("list-rules", flag.ExitOnError)
	jsonOutput := listFlags.Bool("json", false, "Output as JSON")
	_ = listFlags.Parse(args)

	cfg := loadConfig()
	engine := buildEngine(cfg)

	if *jsonOutput {
		out, err := json.MarshalIndent(struct {
			Groups []rules.GroupInfo `json:"groups"`
			User   []rules.Rule      `json:"user_rules,omitempty"`
		}{engine.Groups(), engine.UserRules()}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	total := 0
	for _, g := range engine.Groups() {
		total += len(g.Rules)
	}
	userRules := engine.UserRules()
	total += len(userRules)

	fmt.Printf("%s\n\n", ui.StyleTitle.Render(fmt.Sprintf("autoguard rules (%d total, first match wins)", total)))

	for _, g := range engine.Groups() {
		fmt.Printf("%s\n", ui.StyleCommand.Render(string(g.Category)))
		for _, r := range g.Rules {
			fmt.Printf("  %-26s %s\n", r.Name, ui.StyleMuted.Render(r.Pattern))
		}
		fmt.Println()
	}

	if len(userRules) > 0 {
		fmt.Printf("%s\n", ui.StyleCommand.Render("user"))
		for _, r := range userRules {
			fmt.Printf("  %-26s %s %s\n", r.Name, ui.StyleMuted.Render(r.Pattern),
				ui.StyleMuted.Render(fmt.Sprintf("(%s)", filepath.Base(r.FilePath))))
		}
	}
}

// runLintRules validates user rule files: a named file, or the whole rules
// directory when none is given.
func runLintRules(args []string) {
	lintFlags := flag.NewFlagSet("lint-rules", flag.ExitOnError)
	_ = lintFlags.Parse(args)

	linter := rules.NewLinter()
	var result rules.LintResult

	if remaining := lintFlags.Args(); len(remaining) > 0 {
		filePath := remaining[0]
		fmt.Printf("Linting %s...\n\n", filePath)
		var err error
		result, err = linter.LintFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg := loadConfig()
		dir := cfg.Rules.UserDir
		if dir == "" {
			dir = rules.DefaultUserRulesDir()
		}
		fmt.Printf("Linting user rules in %s...\n\n", dir)

		userRules, err := rules.NewLoader(dir).LoadUser()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("User rules: %d\n\n", len(userRules))
		result = linter.LintRules(userRules)
	}

	fmt.Print(result.FormatIssues())

	fmt.Println()
	if result.Errors > 0 {
		ui.PrintError(fmt.Sprintf("%d error(s), %d warning(s)", result.Errors, result.Warns))
		os.Exit(1)
	} else if result.Warns > 0 {
		ui.PrintWarning(fmt.Sprintf("%d warning(s)", result.Warns))
	} else {
		ui.PrintSuccess("all rules valid")
	}
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func settingsManager(cfg *config.Config, override string) *settings.Manager {
	path := override
	if path == "" {
		path = cfg.Settings.Path
	}
	return settings.NewManager(path)
}

// runInstall registers the hook in the agent settings file.
func runInstall(args []string) {
	installFlags := flag.NewFlagSet("install", flag.ExitOnError)
	yes := installFlags.Bool("yes", false, "Skip the confirmation prompt")
	settingsPath := installFlags.String("settings", "", "Settings file to modify (default .claude/settings.local.json)")
	_ = installFlags.Parse(args)

	cfg := loadConfig()
	mgr := settingsManager(cfg, *settingsPath)

	if installed, err := mgr.Installed(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	} else if installed {
		ui.PrintInfo(fmt.Sprintf("already installed in %s", mgr.Path()))
		return
	}

	if !*yes && !confirm(fmt.Sprintf("Register %q in %s?", settings.HookCommand, mgr.Path())) {
		ui.PrintInfo("aborted")
		return
	}

	if err := mgr.Install(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	ui.PrintSuccess(fmt.Sprintf("hook registered in %s", mgr.Path()))
	ui.PrintInfo("commands are now classified before execution; blocked categories: version-control, remote-access, deployment, file-deletion, privilege-escalation, network-access, container-exec")
}

// runUninstall removes the hook registration.
func runUninstall(args []string) {
	uninstallFlags := flag.NewFlagSet("uninstall", flag.ExitOnError)
	yes := uninstallFlags.Bool("yes", false, "Skip the confirmation prompt")
	settingsPath := uninstallFlags.String("settings", "", "Settings file to modify (default .claude/settings.local.json)")
	_ = uninstallFlags.Parse(args)

	cfg := loadConfig()
	mgr := settingsManager(cfg, *settingsPath)

	if installed, err := mgr.Installed(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	} else if !installed {
		ui.PrintInfo(fmt.Sprintf("not installed in %s", mgr.Path()))
		return
	}

	if !*yes && !confirm(fmt.Sprintf("Remove the hook registration from %s?", mgr.Path())) {
		ui.PrintInfo("aborted")
		return
	}

	if err := mgr.Uninstall(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	ui.PrintSuccess(fmt.Sprintf("hook removed from %s", mgr.Path()))
}

// runCompletion installs or removes shell tab-completion.
func runCompletion(args []string) {
	completionFlags := flag.NewFlagSet("completion", flag.ExitOnError)
	installComp := completionFlags.Bool("install", false, "Install shell completion")
	uninstallComp := completionFlags.Bool("uninstall", false, "Uninstall shell completion")
	_ = completionFlags.Parse(args)

	switch {
	case *installComp:
		if completion.IsInstalled() {
			ui.PrintInfo("shell completion already installed")
			return
		}
		if err := completion.Install(); err != nil {
			ui.PrintError(fmt.Sprintf("failed to install completion: %v", err))
			os.Exit(1)
		}
		ui.PrintSuccess("shell completion installed (restart your shell)")
	case *uninstallComp:
		if err := completion.Uninstall(); err != nil {
			ui.PrintError(fmt.Sprintf("failed to uninstall completion: %v", err))
			os.Exit(1)
		}
		ui.PrintSuccess("shell completion removed")
	default:
		fmt.Fprintln(os.Stderr, "Usage: autoguard completion --install | --uninstall")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`autoguard - pre-execution command guard for autonomous agents

Usage:
  autoguard hook                      Run as a PreToolUse hook (reads request on stdin)
  autoguard check [--json] <command>  Classify a command and print the verdict
  autoguard list-rules [--json]       List builtin detections and user rules
  autoguard lint-rules [file.yaml]    Validate user rule files

  autoguard install [--yes]           Register the hook in .claude/settings.local.json
  autoguard uninstall [--yes]         Remove the hook registration
  autoguard completion --install      Install shell tab-completion

  autoguard help                      Show this help message
  autoguard version                   Show version

Install Flags:
  --yes               Skip the confirmation prompt
  --settings string   Settings file to modify (default ".claude/settings.local.json")

Environment Variables:
  AUTOGUARD_CONFIG         Config file path (default ~/.autoguard/config.yaml)
  AUTOGUARD_LOG_LEVEL      Log level: trace, debug, info, warn, error
  AUTOGUARD_NO_COLOR       Disable colored output
  AUTOGUARD_RULES_DIR      User rules directory (default ~/.autoguard/rules.d)
  AUTOGUARD_SETTINGS_PATH  Settings file managed by install/uninstall

Examples:
  autoguard check 'git push --force'               See why a command is blocked
  autoguard check 'pip install requests'           Installer commands are allowed
  echo '{"tool_name":"Bash","tool_input":{"command":"rm -rf /"}}' | autoguard hook
  autoguard install --yes                          Register in the current project`)
}
