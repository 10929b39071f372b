package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
)

const (
	EnvConfigFile = "ORCAS_CONFIG"
	EnvUnits      = "ORCAS_UNITS"
	EnvCatalog    = "ORCAS_CATALOG"
	EnvLocale     = "ORCAS_LOCALE"
	EnvLogLevel   = "ORCAS_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external orcas-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "orcas-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		// If it's not an ExitError or we can't get the status, report a generic error
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)

		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}

// extensionEnv passes the global flags as the environment variables read by
// the configuration loader, so an extension sees the same settings.
func extensionEnv() []string {
	env := os.Environ()
	set := func(key, value string) {
		if value != "" {
			env = append(env, key+"="+value)
		}
	}
	set(EnvConfigFile, *configFile)
	set(EnvUnits, *unitsFile)
	set(EnvCatalog, *catalogFile)
	set(EnvLocale, *locale)
	if *Verbose {
		set(EnvLogLevel, "debug")
	}
	return env
}
