package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionEnv(t *testing.T) {
	*configFile, *unitsFile, *catalogFile, *locale, *Verbose = "orcas.yaml", "units.csv", "", "IDR", true
	t.Cleanup(func() {
		*configFile, *unitsFile, *catalogFile, *locale, *Verbose = "", "", "", "", false
	})

	env := strings.Join(extensionEnv(), "\n")
	for _, want := range []string{
		EnvConfigFile + "=orcas.yaml",
		EnvUnits + "=units.csv",
		EnvLocale + "=IDR",
		EnvLogLevel + "=debug",
	} {
		if !strings.Contains(env, want) {
			t.Errorf("extension environment lacks %q", want)
		}
	}
	if strings.Contains(env, EnvCatalog+"=\n") {
		t.Errorf("empty %s should not be passed", EnvCatalog)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts need a POSIX shell")
	}
	tempDir := t.TempDir()
	script := "#!/bin/sh\n[ \"$" + EnvLocale + "\" = \"EUR\" ] || exit 3\n[ \"$1\" = \"arg\" ] || exit 4\nexit 7\n"
	if err := os.WriteFile(filepath.Join(tempDir, "orcas-hello"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	*locale = "EUR"
	t.Cleanup(func() { *locale = "" })

	found, code := RunExtension("hello", []string{"arg"})
	if !found {
		t.Fatal("RunExtension() did not find orcas-hello")
	}
	if code != 7 {
		t.Errorf("RunExtension() exit code = %d, want 7", code)
	}

	if found, _ := RunExtension("missing", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
