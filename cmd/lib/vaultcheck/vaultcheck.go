package vaultcheck

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/envvault/envvault.go/configfile"
	"github.com/envvault/envvault.go/vault"
)

// Run runs vaultcheck.
//
// It returns 0 to indicate success,
// and non-zero to indicate failure.
//
// Your main function usually should look like:
//
//	func main() {
//	  os.Exit(vaultcheck.Run())
//	}
func Run() int {
	if err := RunArgs(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	fmt.Println("OK!")
	return 0
}

// RunArgs is the more customizable/testable version of Run.
//
// In production code it expects you to pass in os.Args as the args.
// The audit report is written to out, one NAME=obfuscated-value line per
// required secret, sorted by name.
func RunArgs(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	configPath := fs.String(
		"config",
		"",
		"Path to a YAML file holding the vault configuration (envFile, required).",
	)
	envFile := fs.String(
		"env-file",
		"",
		"Path to a development overlay file in KEY=value form.",
	)
	require := fs.String(
		"require",
		"",
		"Comma-separated list of required secret names.",
	)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	var cfg vault.Config
	if *configPath != "" {
		if err := configfile.ParseStrictFile(*configPath, &cfg); err != nil {
			return err
		}
	} else {
		cfg.EnvFile = *envFile
		if *require != "" {
			cfg.Required = strings.Split(*require, ",")
		}
	}

	// InitFromConfig already validates cfg.Required, so a failure here
	// carries the complete list of missing names.
	v, err := vault.InitFromConfig(cfg)
	if err != nil {
		return err
	}

	// Read every required name so the audit report covers all of them.
	for _, name := range cfg.Required {
		if _, err := v.GetSecret(name); err != nil {
			return err
		}
	}

	report := v.GetAllSecrets(false)
	names := make([]string, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s=%s\n", name, report[name])
	}
	return nil
}
