package codegen

import (
	"fmt"
	"strings"

	"github.com/meltworks/slagview-cli/internal/dataset"
	"github.com/meltworks/slagview-cli/internal/utils"
)

const systemPrompt = "You are a careful data engineer. Reply with a single runnable Python script and nothing else."

// BuildPrompt renders the request sent to the chat API: a compact summary
// of the normalized dataset plus the generation options. The summary is
// truncated to promptLimit tokens when the limit is positive.
func BuildPrompt(ds *dataset.Dataset, cfg *GenerationConfig, promptLimit int) (system, user string, err error) {
	if err := cfg.Validate(); err != nil {
		return "", "", err
	}

	var b strings.Builder
	b.WriteString("Write a training script for a melt-viscosity regression model.\n\n")

	b.WriteString("[DATASET]\n")
	b.WriteString(fmt.Sprintf("Provenance: %s\n", ds.Provenance))
	b.WriteString(fmt.Sprintf("Samples: %d\n", len(ds.Samples)))
	g := dataset.Group(ds.Samples)
	b.WriteString(fmt.Sprintf("Distinct compositions: %d\n", g.Len()))
	b.WriteString("Columns: ")
	b.WriteString(strings.Join(append(append([]string{}, dataset.CompositionFields[:]...), "Temperature", "Viscosity"), ", "))
	b.WriteString("\n")
	for i, sig := range g.Keys() {
		if i >= 5 {
			b.WriteString(fmt.Sprintf("... and %d more groups\n", g.Len()-i))
			break
		}
		series := dataset.Project(g, sig)
		rep, ok := dataset.Representative(series)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("- group %d: %d points, T %.0f..%.0f °C, SiO2 %.2f wt%%",
			i+1, len(series), series[0].Temperature, series[len(series)-1].Temperature, rep.SiO2))
		if rep.Label != "" {
			b.WriteString(fmt.Sprintf(" (%s)", rep.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n[TASK]\n")
	b.WriteString(fmt.Sprintf("Target: %s\n", cfg.Target))
	b.WriteString(fmt.Sprintf("Features: %s\n", strings.Join(cfg.Features, ", ")))
	b.WriteString(fmt.Sprintf("Test split: %.2f\n", cfg.TestSize))
	b.WriteString(fmt.Sprintf("Model: %s\n", cfg.Model))
	if cfg.DB.Table != "" {
		b.WriteString("\n[DATA SOURCE]\n")
		b.WriteString(fmt.Sprintf("Read the table %q from the %s database at %s:%d as user %s.\n",
			cfg.DB.Table, cfg.DB.Database, cfg.DB.Host, cfg.DB.Port, cfg.DB.User))
		if cfg.DB.Password != "" {
			// never embed the secret itself in a prompt
			b.WriteString("Take the password from the DB_PASSWORD environment variable.\n")
		}
	} else {
		b.WriteString("Load the dataset from a local CSV file path given as the first argument.\n")
	}
	b.WriteString("\nReport train/test scores and save the fitted model to disk.\n")

	user = b.String()
	if promptLimit > 0 && utils.CountTokens(user) > promptLimit {
		user = utils.TruncateToTokenLimit(user, promptLimit)
	}
	return systemPrompt, user, nil
}
