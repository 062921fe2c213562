package display

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// OutputFormat controls how an emitted record is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a user supplied name onto an OutputFormat. Empty
// input selects JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatFormURLEncoded:
		return OutputFormatFormURLEncoded, nil
	case OutputFormatPrettyText:
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// ContentType reports the media type produced by Encode for format.
func ContentType(format OutputFormat) string {
	switch format {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes the record. Values are written exactly as held; no
// trimming or escaping beyond what the format itself requires.
func Encode(values form.FieldSet, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(formEncode(values)), nil
	case OutputFormatPrettyText:
		return prettyPrint(values)
	case OutputFormatJSON, "":
		return json.Marshal(values)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func formEncode(values form.FieldSet) string {
	out := url.Values{}
	out.Set(string(model.FieldNameName), values.Name)
	out.Set(string(model.FieldNameEmail), values.Email)
	out.Set(string(model.FieldNameAgree), strconv.FormatBool(values.AgreeTerms))
	out.Set(string(model.FieldNameGender), values.Gender)
	return out.Encode()
}

const prettySource = `name={{ name|safe }}
email={{ email|safe }}
agreeTerms={{ agreeTerms }}
gender={{ gender|safe }}
`

var (
	prettyOnce sync.Once
	prettyTpl  *pongo2.Template
	prettyErr  error
)

func prettyPrint(values form.FieldSet) ([]byte, error) {
	prettyOnce.Do(func() {
		prettyTpl, prettyErr = pongo2.FromString(prettySource)
	})
	if prettyErr != nil {
		return nil, fmt.Errorf("display: parse pretty template: %w", prettyErr)
	}
	out, err := prettyTpl.Execute(pongo2.Context{
		"name":       values.Name,
		"email":      values.Email,
		"agreeTerms": strconv.FormatBool(values.AgreeTerms),
		"gender":     values.Gender,
	})
	if err != nil {
		return nil, fmt.Errorf("display: render pretty template: %w", err)
	}
	return []byte(out), nil
}
