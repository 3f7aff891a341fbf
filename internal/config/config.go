package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bcmister/mondpi/internal/dpi"
)

// Flag names. They match case-insensitively and take one or two dashes.
const (
	FlagDPIAware = "dpiaware"
	FlagProcess  = "process"
)

// Options holds the settings for a window run
type Options struct {
	Awareness    dpi.ProcessAwareness
	ProcessName  string
	Unrecognized []string
}

// Default returns the options used when no flags are given
func Default() Options {
	return Options{Awareness: dpi.DefaultProcessAwareness}
}

// BindFlags registers the options on fs
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(NormalizeFlagName)
	fs.Var(&awarenessValue{a: &o.Awareness}, FlagDPIAware,
		"process DPI awareness to request: 0=unaware, 1=system-aware, 2=per-monitor-aware")
	fs.StringVar(&o.ProcessName, FlagProcess, "",
		"executable name (with extension) of a process whose window DPI awareness to report")
}

// NormalizeFlagName lowercases flag names so -DPIAware and -dpiaware match
func NormalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ToLower(name))
}

// NormalizeArgs rewrites the Windows-style "-name value" arguments into
// "--name=value" form for pflag. Everything it cannot place is returned in
// unrecognized: unknown arguments and a flag missing its value.
func NormalizeArgs(args []string) (canonical, unrecognized []string) {
	for i := 0; i < len(args); i++ {
		name, ok := flagName(args[i])
		if !ok || (name != FlagDPIAware && name != FlagProcess) {
			unrecognized = append(unrecognized, args[i])
			continue
		}
		if i+1 >= len(args) {
			unrecognized = append(unrecognized, args[i])
			continue
		}
		i++
		canonical = append(canonical, "--"+name+"="+args[i])
	}
	return canonical, unrecognized
}

func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" || strings.ContainsRune(name, '=') {
		return "", false
	}
	return strings.ToLower(name), true
}

// awarenessValue adapts dpi.ProcessAwareness to pflag.Value
type awarenessValue struct {
	a *dpi.ProcessAwareness
}

func (v *awarenessValue) String() string {
	if v.a == nil {
		return ""
	}
	return fmt.Sprint(int(*v.a))
}

// Set never fails: text that is not a number reads as 0.
func (v *awarenessValue) Set(s string) error {
	*v.a = dpi.ParseProcessAwareness(s)
	return nil
}

func (v *awarenessValue) Type() string { return "int" }
