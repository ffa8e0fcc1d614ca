package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if world.GameWidth <= 0 || world.GameHeight <= 0 {
		t.Fatalf("expected positive world size, got %+v", world)
	}

	star, err := LoadStarSpec()
	if err != nil {
		t.Fatalf("LoadStarSpec: %v", err)
	}
	if star.FrameMs != 80 {
		t.Fatalf("expected 80ms frames, got %g", star.FrameMs)
	}
	if star.Color.Color == nil {
		t.Fatalf("expected star color to be parsed")
	}

	platform, err := LoadPlatformSpec()
	if err != nil {
		t.Fatalf("LoadPlatformSpec: %v", err)
	}
	if platform.MinUnits > platform.MaxUnits {
		t.Fatalf("unit range inverted: %+v", platform)
	}

	tuning, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("LoadTuningSpec: %v", err)
	}
	if tuning.Gravity <= 0 || tuning.BounceSpeed <= 0 {
		t.Fatalf("expected positive gravity and bounce, got %+v", tuning)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[WorldSpec]("does_not_exist.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `c: "#ff8000"`, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 16, G: 32, B: 48, A: 64}, false},
		{"short", `c: "#fff"`, color.NRGBA{}, true},
		{"bad_hex", `c: "#zz0000"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.C.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, out.C.Color)
			}
		})
	}

	var empty YAMLColor
	if empty.Or(color.White) != color.White {
		t.Fatalf("expected fallback for empty color")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"world.yaml":         "world.yaml",
		"prefabs/world.yaml": "world.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tuning.yaml"), []byte("gravity: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		names, err := w.Poll()
		if err != nil {
			t.Fatalf("watcher error: %v", err)
		}
		for _, n := range names {
			if n == "notes.txt" {
				t.Fatalf("non-yaml file reported")
			}
			if n == "tuning.yaml" {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("tuning.yaml change was not reported")
}
