package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"
)

const testNetlist = `<?xml version="1.0" encoding="UTF-8"?>
<export version="E">
  <design><tool>Eeschema 8.0.1</tool></design>
  <components>
    <comp ref="R10"><value>10k</value><footprint>R_0603</footprint><libsource lib="Device" part="R"/></comp>
    <comp ref="R2"><value>10k</value><footprint>R_0603</footprint><libsource lib="Device" part="R"/></comp>
    <comp ref="U1"><value>LM358</value>
      <fields><field name="MFG1">TI</field><field name="mfg1pn">LM358DR</field></fields>
      <libsource lib="Amplifier_Operational" part="LM358"/></comp>
    <comp ref="R3"><value>1k</value>
      <fields><field name="Exclude"></field></fields>
      <libsource lib="Device" part="R"/></comp>
    <comp ref="#PWR01"><value>GND</value><libsource lib="power" part="GND"/></comp>
  </components>
</export>
`

// resetFlags restores package flag state between runs.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, configPath = false, ""
	sortRefs, strictGroups, noAux = false, false, false
	representative, outputFormat = "last", "auto"
	t.Setenv("KICAD_BOM_CONFIG", "")
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		c.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeNetlist(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "amp.xml")
	if err := os.WriteFile(path, []byte(testNetlist), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestGenerateE2E(t *testing.T) {
	const header = `"Qty","Reference(s)","description","mfg1","mfg1pn","mfg2","mfg2pn"` + "\n"

	tests := []struct {
		name string
		args []string
		aux  string
		want string
	}{
		{
			name: "defaults without aux",
			want: header +
				`"2","R10, R2","","","","",""` + "\n" +
				`"1","U1","","TI","LM358DR","",""` + "\n",
		},
		{
			name: "sorted",
			args: []string{"--sort"},
			want: header +
				`"2","R2, R10","","","","",""` + "\n" +
				`"1","U1","","TI","LM358DR","",""` + "\n",
		},
		{
			name: "with aux",
			aux:  "Qty,Reference(s),description,mfg1,mfg1pn,mfg2,mfg2pn\n2,,Standoff M3,Wurth,970100321,,\n",
			want: header +
				`"2","R10, R2","","","","",""` + "\n" +
				`"1","U1","","TI","LM358DR","",""` + "\n" +
				`"2","","Standoff M3","Wurth","970100321","",""` + "\n",
		},
		{
			name: "aux disabled",
			args: []string{"--no-aux"},
			aux:  "Qty,Reference(s),description,mfg1,mfg1pn,mfg2,mfg2pn\n2,,Standoff M3,Wurth,970100321,,\n",
			want: header +
				`"2","R10, R2","","","","",""` + "\n" +
				`"1","U1","","TI","LM358DR","",""` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, input := writeNetlist(t)
			output := filepath.Join(dir, "amp.csv")
			if tt.aux != "" {
				if err := os.WriteFile(filepath.Join(dir, "amp-aux.csv"), []byte(tt.aux), 0644); err != nil {
					t.Fatal(err)
				}
			}

			args := append(append([]string{}, tt.args...), input, output)
			if out, err := execute(t, args...); err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, out)
			}

			got, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Unexpected BOM:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestGenerateStdoutFallback(t *testing.T) {
	dir, input := writeNetlist(t)
	output := filepath.Join(dir, "nodir", "amp.csv")

	out, err := execute(t, input, output)
	if err != nil {
		t.Fatalf("Unexpected error: %v\nOutput: %s", err, out)
	}

	want := `"Qty","Reference(s)","description","mfg1","mfg1pn","mfg2","mfg2pn"` + "\n" +
		`"2","R10, R2","","","","",""` + "\n" +
		`"1","U1","","TI","LM358DR","",""` + "\n"
	if out != want {
		t.Errorf("Unexpected stdout:\n%s\nwant:\n%s", out, want)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Expected no output file, stat error = %v", err)
	}
}

func TestGenerateXLSXE2E(t *testing.T) {
	dir, input := writeNetlist(t)
	output := filepath.Join(dir, "amp.xlsx")

	if out, err := execute(t, input, output); err != nil {
		t.Fatalf("Unexpected error: %v\nOutput: %s", err, out)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("BOM")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d: %v", len(rows), rows)
	}
	if rows[1][1] != "R10, R2" {
		t.Errorf("Expected 'R10, R2', got %q", rows[1][1])
	}
}

func TestGenerateErrors(t *testing.T) {
	dir, input := writeNetlist(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "one argument", args: []string{input}},
		{name: "three arguments", args: []string{input, "a.csv", "b.csv"}},
		{name: "missing netlist", args: []string{filepath.Join(dir, "missing.xml"), filepath.Join(dir, "out.csv")}},
		{name: "bad representative", args: []string{"--representative", "median", input, filepath.Join(dir, "out.csv")}},
		{name: "unwritable workbook", args: []string{input, filepath.Join(dir, "nodir", "out.xlsx")}},
		{name: "bad config", args: []string{"--config", filepath.Join(dir, "missing.yaml"), input, filepath.Join(dir, "out.csv")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("Expected error but got none")
			}
		})
	}
}

func TestGenerateConfigFile(t *testing.T) {
	dir, input := writeNetlist(t)
	output := filepath.Join(dir, "amp.csv")
	cfgFile := filepath.Join(dir, "kicad-bom.yaml")
	if err := os.WriteFile(cfgFile, []byte("sort: true\nfilter:\n  excluded_refs: [\"#.*\", \"U.*\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "--config", cfgFile, input, output); err != nil {
		t.Fatalf("Unexpected error: %v\nOutput: %s", err, out)
	}

	got, _ := os.ReadFile(output)
	if strings.Contains(string(got), "U1") {
		t.Errorf("U1 should be filtered by config, got:\n%s", got)
	}
	if !strings.Contains(string(got), `"R2, R10"`) {
		t.Errorf("Expected sorted refs from config, got:\n%s", got)
	}
}

func TestInfoE2E(t *testing.T) {
	_, input := writeNetlist(t)

	out, err := execute(t, "info", input)
	if err != nil {
		t.Fatalf("Unexpected error: %v\nOutput: %s", err, out)
	}

	for _, want := range []string{
		"Tool: Eeschema 8.0.1",
		"Components: 5",
		"Interesting: 4",
		"Excluded by field: 1",
		"Groups: 2",
		"LM358DR",
		"R10, R2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing expected string: %q\nGot:\n%s", want, out)
		}
	}
}
