package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Setting keys. Environment variables are the upper-cased key with dots
// replaced by underscores and a TT_ prefix, e.g. TT_DB_DIR.
const (
	KeyDBDir                = "db.dir"
	KeyDBFilename           = "db.filename"
	KeyDBQueryTimeout       = "db.query_timeout"
	KeyDBWriteTimeout       = "db.write_timeout"
	KeyDBDirPermissions     = "db.dir_permissions"
	KeyTitleMinLength       = "validation.title_min_length"
	KeyTitleMaxLength       = "validation.title_max_length"
	KeyDescriptionMaxLength = "validation.description_max_length"
	KeyRecommendLimit       = "recommend.limit"
	KeyDueSoonDays          = "recommend.due_soon_days"
	KeyAppTimeout           = "app.timeout"
	KeyAppEnv               = "app.env"
	KeyLogLevel             = "log.level"
	KeyServerAddr           = "server.addr"
	KeyShutdownTimeout      = "server.shutdown_timeout"
	KeyOutputFormat         = "output.format"
)

// keyFor maps a struct namespace such as "Config.Database.Dir" to its setting key.
func keyFor(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}

	typ := reflect.TypeOf(Config{})
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		field, ok := typ.FieldByName(part)
		if !ok {
			keys = append(keys, strings.ToLower(part))
			continue
		}
		keys = append(keys, field.Tag.Get("mapstructure"))
		typ = field.Type
	}
	return strings.Join(keys, ".")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", keyFor("Config.Validation."+fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
