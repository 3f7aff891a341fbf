package monitor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlMonitor struct {
	Index   int    `yaml:"index"`
	Device  string `yaml:"device"`
	Primary bool   `yaml:"primary"`
	Flags   uint32 `yaml:"flags"`
	Bounds  Rect   `yaml:"bounds,flow"`
	Work    Rect   `yaml:"work,flow"`
	DPI     [2]int `yaml:"dpi,flow"`
	Scale   int    `yaml:"scale"`
}

type yamlReport struct {
	Monitors []yamlMonitor `yaml:"monitors"`
}

// WriteYAML renders monitors as a YAML document
func WriteYAML(w io.Writer, monitors []Monitor) error {
	doc := yamlReport{Monitors: make([]yamlMonitor, 0, len(monitors))}
	for _, m := range monitors {
		doc.Monitors = append(doc.Monitors, yamlMonitor{
			Index:   m.Index,
			Device:  m.Device,
			Primary: m.Primary,
			Flags:   m.Flags,
			Bounds:  m.Bounds,
			Work:    m.Work,
			DPI:     [2]int{m.DPIX, m.DPIY},
			Scale:   m.Scale(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal monitors: %w", err)
	}
	return enc.Close()
}
