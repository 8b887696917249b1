package physics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.physics")
	defer teardown()
	//
	d := Defaults()
	if d["c"] != 299792458 {
		t.Errorf("expected c = 299792458, is %g", d["c"])
	}
	if _, ok := d[`\hbar`]; !ok {
		t.Errorf(`expected \hbar to be a default constant`)
	}
	values := d.Values()
	values["c"] = 1
	if d["c"] == 1 {
		t.Errorf("Values should return a copy")
	}
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.physics")
	defer teardown()
	//
	path := writeFile(t, "moon.toml", "g = 1.62\nr_M = 1737400\n\"\\\\lambda\" = 2\n")
	table, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if table["g"] != 1.62 {
		t.Errorf("expected g to be replaced by 1.62, is %g", table["g"])
	}
	if table["r_M"] != 1737400 {
		t.Errorf("expected integer r_M = 1737400, is %g", table["r_M"])
	}
	if table[`\lambda`] != 2 {
		t.Errorf(`expected \lambda = 2, is %g`, table[`\lambda`])
	}
	if table["c"] != 299792458 {
		t.Errorf("expected defaults to be kept")
	}
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.physics")
	defer teardown()
	//
	path := writeFile(t, "lab.yaml", "g: 9.81\nm: 3\n")
	table, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if table["g"] != 9.81 || table["m"] != 3 {
		t.Errorf("expected g = 9.81 and m = 3, are %g and %g", table["g"], table["m"])
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fishrambeta.physics")
	defer teardown()
	//
	if _, err := LoadFile(writeFile(t, "x.json", "{}")); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected unknown file type to be rejected, is %v", err)
	}
	if _, err := LoadFile(writeFile(t, "x.toml", "g = \"fast\"\n")); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected non-numeric constant to be rejected, is %v", err)
	}
	if _, err := LoadFile(writeFile(t, "x.yaml", "g: [1\n")); !errors.Is(err, fishrambeta.ErrMalformedInput) {
		t.Errorf("expected broken YAML to be rejected, is %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}
