package compiler

import (
	"strings"
	"text/template"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/zerr"
)

// templateData is what command templates are expanded with.
type templateData struct {
	Input    string
	Output   string
	Name     string
	Version  string
	Dir      string
	Wrapper  string
	Minify   bool
	External []string
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// expand renders each argument template with data. Arguments that render empty are dropped.
func expand(argv []string, data any) ([]string, error) {
	out := make([]string, 0, len(argv))
	for _, arg := range argv {
		if !strings.Contains(arg, "{{") {
			out = append(out, arg)
			continue
		}
		tmpl, err := template.New("arg").Funcs(funcs).Option("missingkey=error").Parse(arg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommandTemplate.Error()), "arg", arg)
		}
		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommandTemplate.Error()), "arg", arg)
		}
		if s := sb.String(); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
