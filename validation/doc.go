// Package validation checks configuration structs.
//
// Struct tag validation uses go-playground/validator and reports field names
// by their mapstructure key, so messages match what users write in YAML or env:
//
//	type Config struct {
//	    BufferSize int `mapstructure:"buffer_size" validate:"gte=0"`
//	}
//	err := validation.Struct(cfg)
//
// Cross-field rules that tags cannot express use the collecting Validator:
//
//	v := validation.New()
//	v.Check(cfg.BatchSize > 0 || cfg.BatchTimeout > 0, "batch_size", "or batch_timeout must be set")
//	err := v.Err()
package validation
