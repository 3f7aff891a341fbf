package config

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"

	"github.com/bcmister/mondpi/internal/dpi"
)

// parse runs args through the same normalize-then-pflag path as the root command.
func parse(t *testing.T, args []string) Options {
	t.Helper()
	opts := Default()
	canonical, unrecognized := NormalizeArgs(args)

	fs := pflag.NewFlagSet("mondpi", pflag.ContinueOnError)
	opts.BindFlags(fs)
	if err := fs.Parse(canonical); err != nil {
		t.Fatalf("parse(%v) failed: %v", args, err)
	}
	opts.Unrecognized = unrecognized
	return opts
}

func TestDefault(t *testing.T) {
	opts := parse(t, nil)
	if opts.Awareness != dpi.ProcessPerMonitorAware {
		t.Errorf("expected per-monitor awareness by default, got %v", opts.Awareness)
	}
	if opts.ProcessName != "" {
		t.Errorf("expected no process name, got %q", opts.ProcessName)
	}
	if len(opts.Unrecognized) != 0 {
		t.Errorf("expected no unrecognized args, got %v", opts.Unrecognized)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		awareness    dpi.ProcessAwareness
		process      string
		unrecognized []string
	}{
		{"dpiaware", []string{"-dpiaware", "1"}, dpi.ProcessSystemAware, "", nil},
		{"process", []string{"-process", "notepad.exe"}, dpi.ProcessPerMonitorAware, "notepad.exe", nil},
		{"both", []string{"-process", "a.exe", "-dpiaware", "0"}, dpi.ProcessUnaware, "a.exe", nil},
		{"case-insensitive", []string{"-DPIAware", "1", "-Process", "X.EXE"}, dpi.ProcessSystemAware, "X.EXE", nil},
		{"double dash", []string{"--dpiaware", "0"}, dpi.ProcessUnaware, "", nil},
		{"uninterpreted integer", []string{"-dpiaware", "7"}, dpi.ProcessAwareness(7), "", nil},
		{"last wins", []string{"-dpiaware", "0", "-dpiaware", "1"}, dpi.ProcessSystemAware, "", nil},
		{"unknown flag", []string{"-verbose"}, dpi.ProcessPerMonitorAware, "", []string{"-verbose"}},
		{"positional", []string{"foo", "-process", "b.exe", "bar"}, dpi.ProcessPerMonitorAware, "b.exe", []string{"foo", "bar"}},
		{"missing value", []string{"-process"}, dpi.ProcessPerMonitorAware, "", []string{"-process"}},
		{"non-integer reads as zero", []string{"-dpiaware", "high"}, dpi.ProcessUnaware, "", nil},
		{"leading integer", []string{"-dpiaware", "2abc"}, dpi.ProcessPerMonitorAware, "", nil},
		{"leading blank", []string{"-dpiaware", " 1"}, dpi.ProcessSystemAware, "", nil},
		{"value looks like flag", []string{"-process", "-x.exe"}, dpi.ProcessPerMonitorAware, "-x.exe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := parse(t, tt.args)
			if opts.Awareness != tt.awareness {
				t.Errorf("Awareness = %v, want %v", opts.Awareness, tt.awareness)
			}
			if opts.ProcessName != tt.process {
				t.Errorf("ProcessName = %q, want %q", opts.ProcessName, tt.process)
			}
			if !reflect.DeepEqual(opts.Unrecognized, tt.unrecognized) {
				t.Errorf("Unrecognized = %v, want %v", opts.Unrecognized, tt.unrecognized)
			}
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	canonical, unrecognized := NormalizeArgs([]string{"-DPIAWARE", "2", "x", "-process", "n.exe", "-y"})

	want := []string{"--dpiaware=2", "--process=n.exe"}
	if !reflect.DeepEqual(canonical, want) {
		t.Errorf("canonical = %v, want %v", canonical, want)
	}
	if len(unrecognized) != 2 {
		t.Errorf("expected 2 unrecognized args, got %v", unrecognized)
	}
}

func TestFlagName(t *testing.T) {
	tests := []struct {
		arg  string
		name string
		ok   bool
	}{
		{"-process", "process", true},
		{"--Process", "process", true},
		{"process", "", false},
		{"-", "", false},
		{"--", "", false},
		{"--process=x", "", false},
	}

	for _, tt := range tests {
		name, ok := flagName(tt.arg)
		if name != tt.name || ok != tt.ok {
			t.Errorf("flagName(%q) = %q, %v, want %q, %v", tt.arg, name, ok, tt.name, tt.ok)
		}
	}
}
