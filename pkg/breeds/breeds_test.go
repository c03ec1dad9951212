// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package breeds

import (
	"os"
	"path/filepath"
	"testing"

	"breedset/pkg/types"
)

const sampleDatasetJSON = `[
  {
    "name": "Affenpinscher",
    "origin": "Germany",
    "imageURL": "https://x/Affenpinscher.jpg"
  },
  {
    "name": "Akita",
    "origin": "Japan",
    "imageURL": ""
  },
  {
    "name": "Beagle",
    "origin": "",
    "imageURL": ""
  }
]
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breeds.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndAll(t *testing.T) {
	c, err := Load(writeDataset(t, sampleDatasetJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}

	all := c.All()
	wantNames := []string{"Affenpinscher", "Akita", "Beagle"}
	for i, name := range wantNames {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q (persisted order)", i, all[i].Name, name)
		}
	}
}

func TestAllReturnsACopy(t *testing.T) {
	c, err := Load(writeDataset(t, sampleDatasetJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c.All()[0] = types.BreedRecord{Name: "mutated"}
	if c.All()[0].Name != "Affenpinscher" {
		t.Error("mutating the returned slice must not affect the collection")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load should fail for a missing dataset")
	}
}

func TestPickNeverRepeatsImmediately(t *testing.T) {
	c, err := Load(writeDataset(t, sampleDatasetJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := NewPicker()
	last := ""
	for i := 0; i < 200; i++ {
		record, ok := p.Pick(c)
		if !ok {
			t.Fatal("Pick returned no record from a non-empty collection")
		}
		if record.Name == last {
			t.Fatalf("pick %d repeated %q immediately", i, record.Name)
		}
		last = record.Name
	}
}

func TestPickRerollsOnRepeatIndex(t *testing.T) {
	c, err := Load(writeDataset(t, sampleDatasetJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Deterministic sequence: the second pick first lands on the
	// previous index and must re-roll.
	sequence := []int{1, 1, 2}
	p := &Picker{last: -1, intn: func(n int) int {
		v := sequence[0]
		sequence = sequence[1:]
		return v
	}}

	first, _ := p.Pick(c)
	second, _ := p.Pick(c)
	if first.Name != "Akita" {
		t.Errorf("first pick = %q, want Akita", first.Name)
	}
	if second.Name != "Beagle" {
		t.Errorf("second pick = %q, want Beagle after re-roll", second.Name)
	}
}

func TestPickSingleRecordAlwaysReturned(t *testing.T) {
	c, err := Load(writeDataset(t, `[{"name": "Beagle", "origin": "", "imageURL": ""}]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := NewPicker()
	for i := 0; i < 5; i++ {
		record, ok := p.Pick(c)
		if !ok || record.Name != "Beagle" {
			t.Fatalf("pick %d = (%v, %v), want Beagle", i, record, ok)
		}
	}
}

func TestPickEmptyCollection(t *testing.T) {
	c, err := Load(writeDataset(t, "[]\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := NewPicker().Pick(c); ok {
		t.Fatal("Pick on an empty collection should report no record")
	}
}
