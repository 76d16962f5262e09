// Package config loads application settings from YAML, dotenv files and
// environment variables using Viper.
//
// Load decodes into any Target, applies its defaults and validates it:
//
//	var s config.Settings
//	if err := config.Load("seqkit-demo", &s); err != nil {
//	    return err
//	}
//	rt, err := s.Build(ctx)
//
// Environment variables override file values when prefixed with the
// upper-cased application name, e.g. SEQKIT_DEMO_STREAM_BUFFER_SIZE=64 sets
// stream.buffer_size.
package config
