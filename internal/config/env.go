package config

import (
	"os"
	"reflect"
	"strconv"
)

// loadFromEnv overrides configuration with environment variables,
// driven by the `env` struct tags.
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// processStructFields walks through struct fields to override config with env vars
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envKey := fieldType.Tag.Get("env")
		if envKey == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envKey)
		if !exists {
			continue
		}

		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(envValue)
		case reflect.Int, reflect.Int64:
			if intValue, err := strconv.ParseInt(envValue, 10, 64); err == nil {
				field.SetInt(intValue)
			}
		case reflect.Bool:
			if boolValue, err := strconv.ParseBool(envValue); err == nil {
				field.SetBool(boolValue)
			}
		}
	}

	return nil
}
