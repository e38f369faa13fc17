package codegen

import (
	"fmt"
	"strings"
)

// ModelType enumerates the regression models the generated script may use.
type ModelType string

const (
	ModelLinear           ModelType = "linear"
	ModelRidge            ModelType = "ridge"
	ModelLasso            ModelType = "lasso"
	ModelRandomForest     ModelType = "random_forest"
	ModelGradientBoosting ModelType = "gradient_boosting"
	ModelSVR              ModelType = "svr"
)

// ModelTypes lists the recognized model types in display order.
var ModelTypes = []ModelType{
	ModelLinear, ModelRidge, ModelLasso,
	ModelRandomForest, ModelGradientBoosting, ModelSVR,
}

// DBConfig describes where the generated script should read its training
// table from. The tool never connects to this database itself; the values
// only travel inside the generated code.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string // optional
	Database string
	Table    string
}

// GenerationConfig is the option payload handed to the script generator.
type GenerationConfig struct {
	Target   string
	Features []string
	TestSize float64
	Model    ModelType
	DB       DBConfig
}

// Validate checks the config against the recognized option ranges.
func (c *GenerationConfig) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target column is required")
	}
	if len(c.Features) == 0 {
		return fmt.Errorf("at least one feature column is required")
	}
	for _, f := range c.Features {
		if strings.EqualFold(f, c.Target) {
			return fmt.Errorf("feature %q duplicates the target column", f)
		}
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return fmt.Errorf("test size must be in (0,1), got %g", c.TestSize)
	}
	if !validModelType(c.Model) {
		return fmt.Errorf("unknown model type %q (valid: %s)", c.Model, joinModelTypes())
	}
	if c.DB.Table != "" {
		if c.DB.Host == "" || c.DB.Database == "" {
			return fmt.Errorf("db table %q given without host/database", c.DB.Table)
		}
		if c.DB.Port <= 0 || c.DB.Port > 65535 {
			return fmt.Errorf("db port %d out of range", c.DB.Port)
		}
	}
	return nil
}

func validModelType(m ModelType) bool {
	for _, t := range ModelTypes {
		if m == t {
			return true
		}
	}
	return false
}

func joinModelTypes() string {
	parts := make([]string, len(ModelTypes))
	for i, t := range ModelTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
