package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.CuttingPlane().Normal != model3d.Z(1) || cfg.CuttingPlane().Offset != 0 {
		t.Errorf("unexpected default plane: %v", cfg.CuttingPlane())
	}
	if _, err := cfg.IntegralKind(); err != nil {
		t.Error(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`integral: surface
concurrency: 3
plane:
  normal: [1, 0, 0]
  offset: 0.25
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Integral != "surface" || cfg.Concurrency != 3 || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	plane := cfg.CuttingPlane()
	if plane.Normal != model3d.X(1) || plane.Offset != 0.25 {
		t.Errorf("unexpected plane: %v", plane)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"integral":    "integral: line\n",
		"concurrency": "concurrency: -2\n",
		"normal":      "plane:\n  normal: [0, 0, 0]\n",
		"level":       "logging:\n  level: loud\n",
		"syntax":      "integral: [\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), name+".yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFlags(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.AddFlags(fs, true)
	err := fs.Parse([]string{"-integral", "surface", "-normal", "1, 2, 3", "-offset", "-0.5",
		"-concurrency", "0"})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Integral != "surface" || cfg.Concurrency != 0 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	plane := cfg.CuttingPlane()
	if plane.Normal != model3d.XYZ(1, 2, 3) || plane.Offset != -0.5 {
		t.Errorf("unexpected plane: %v", plane)
	}

	f.Normal = "1,2"
	if _, err := f.Load(); err == nil {
		t.Error("expected error for short normal")
	}
}
