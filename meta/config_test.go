package meta

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		field   string
	}{
		{"default", func(*Config) {}, false, ""},
		{"max literals zero", func(c *Config) { c.MaxLiterals = 0 }, true, "MaxLiterals"},
		{"max literals too large", func(c *Config) { c.MaxLiterals = 1001 }, true, "MaxLiterals"},
		{"min literal len zero", func(c *Config) { c.MinLiteralLen = 0 }, true, "MinLiteralLen"},
		{"min literal len too large", func(c *Config) { c.MinLiteralLen = 65 }, true, "MinLiteralLen"},
		{
			"limits ignored without shortcuts",
			func(c *Config) {
				c.EnableLiteral = false
				c.EnablePrefilter = false
				c.MaxLiterals = 0
				c.MinLiteralLen = 0
			},
			false, "",
		},
		{
			"min len ignored without prefilter",
			func(c *Config) {
				c.EnablePrefilter = false
				c.MinLiteralLen = 0
			},
			false, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("error does not wrap ErrInvalidConfig")
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
	want := "minire: invalid config: MaxLiterals: must be between 1 and 1,000"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCompileWithInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = -1
	if _, err := CompileWithConfig("abc", config); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("CompileWithConfig() error = %v, want ErrInvalidConfig", err)
	}
}
