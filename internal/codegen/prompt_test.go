package codegen

import (
	"strings"
	"testing"

	"github.com/meltworks/slagview-cli/internal/dataset"
	"github.com/meltworks/slagview-cli/internal/utils"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	mkRow := func(pairs ...string) *dataset.Row {
		r := dataset.NewRow()
		for i := 0; i+1 < len(pairs); i += 2 {
			r.Set(pairs[i], dataset.TextValue(pairs[i+1]))
		}
		return r
	}
	rows := []*dataset.Row{
		mkRow("SiO2", "53.5", "temp", "1488", "viscosity", "2.268", "remark", "basalt"),
		mkRow("SiO2", "53.5", "temp", "1470", "viscosity", "2.232"),
		mkRow("SiO2", "60.1", "temp", "1500", "viscosity", "1.9"),
	}
	ds, err := dataset.NewDataset("melts.csv", rows)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestBuildPrompt(t *testing.T) {
	cfg := validConfig()
	system, user, err := BuildPrompt(testDataset(t), cfg, 0)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if system == "" {
		t.Fatalf("empty system prompt")
	}
	for _, want := range []string{
		"[DATASET]", "[TASK]",
		"Samples: 3", "Distinct compositions: 2",
		"Target: Viscosity", "Model: random_forest",
		"Test split: 0.20",
		"local CSV file",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q:\n%s", want, user)
		}
	}
}

func TestBuildPromptWithDB(t *testing.T) {
	cfg := validConfig()
	cfg.DB = DBConfig{Host: "db.lab", Port: 5432, User: "ml", Password: "hunter2", Database: "melts", Table: "runs"}
	_, user, err := BuildPrompt(testDataset(t), cfg, 0)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if !strings.Contains(user, "[DATA SOURCE]") {
		t.Fatalf("prompt missing data source section:\n%s", user)
	}
	if !strings.Contains(user, "db.lab:5432") {
		t.Errorf("prompt missing db endpoint")
	}
	// the secret itself must never reach the prompt
	if strings.Contains(user, "hunter2") {
		t.Fatalf("prompt embeds the db password")
	}
	if !strings.Contains(user, "DB_PASSWORD") {
		t.Errorf("prompt does not point at the password env var")
	}
}

func TestBuildPromptInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.TestSize = 2
	if _, _, err := BuildPrompt(testDataset(t), cfg, 0); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestBuildPromptRespectsTokenLimit(t *testing.T) {
	cfg := validConfig()
	_, user, err := BuildPrompt(testDataset(t), cfg, 20)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if n := utils.CountTokens(user); n > 20 {
		t.Fatalf("tokens = %d, exceeds limit", n)
	}
}
