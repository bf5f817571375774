package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// Running a subcommand merges the root's persistent flags into its
// flag set, so this catches shorthand collisions that only surface at
// execution time.
func TestScreenCommandExecutes(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"screen", "--help"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("screen --help: %v", err)
	}

	help := out.String()
	for _, flag := range []string{"--resume", "--job", "--json", "--debug"} {
		if !strings.Contains(help, flag) {
			t.Errorf("help output missing %s:\n%s", flag, help)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"screen": false, "extract": false, "skills": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestNewPipelineUsesLoggingFlags(t *testing.T) {
	viper.Set("json", true)
	viper.Set("debug", true)
	defer func() {
		viper.Set("json", false)
		viper.Set("debug", false)
	}()

	p, err := newPipeline()
	if err != nil {
		t.Fatalf("building pipeline: %v", err)
	}
	if p.screening == nil || p.pdfParser == nil || p.extractor == nil || p.explainer == nil {
		t.Error("pipeline missing services")
	}
}
