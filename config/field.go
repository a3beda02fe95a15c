package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/kaltdl/kaltdl/color"
	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a known configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Kaltdl + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the Go type of the default value, e.g. "int" or "[]string".
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

type fieldJSON struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Env         string `json:"env"`
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return lo.Ternary(value, style.Fg(color.Green), style.Fg(color.Red))(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"hl":     highlight,
	"value":  viper.Get,
}).Parse(`{{ purple .Key }} {{ faint .Type }}
{{ faint .Description }}
  {{ blue "value" }}   {{ hl (value .Key) }}
  {{ blue "default" }} {{ hl .Value }}
  {{ blue "env" }}     {{ .Env }}`))
