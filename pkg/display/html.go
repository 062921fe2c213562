package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formcheck/pkg/validation"
)

const errorsSource = `{% for issue in issues %}<p class="form-error" data-field="{{ issue.field }}">{{ issue.message }}</p>
{% endfor %}`

var (
	htmlOnce   sync.Once
	htmlTpl    *pongo2.Template
	htmlErr    error
	htmlPolicy *bluemonday.Policy
)

// HTMLErrors renders one paragraph per failing field, in canonical order.
// A valid result renders as the empty string.
func HTMLErrors(result validation.Result) (string, error) {
	if len(result.Issues) == 0 {
		return "", nil
	}
	htmlOnce.Do(func() {
		htmlTpl, htmlErr = pongo2.FromString(errorsSource)
		htmlPolicy = errorPolicy()
	})
	if htmlErr != nil {
		return "", fmt.Errorf("display: parse errors template: %w", htmlErr)
	}

	issues := make([]map[string]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, map[string]string{
			"field":   string(issue.Field),
			"message": issue.Message,
		})
	}
	out, err := htmlTpl.Execute(pongo2.Context{"issues": issues})
	if err != nil {
		return "", fmt.Errorf("display: render errors template: %w", err)
	}
	return strings.TrimSpace(htmlPolicy.Sanitize(out)), nil
}

func errorPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("p")
	policy.AllowAttrs("class").OnElements("p")
	policy.AllowDataAttributes()
	return policy
}
