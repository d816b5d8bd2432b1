package rowconv

import (
	"errors"

	"rowdoc/column"
	"rowdoc/document"
	"rowdoc/internal/diagnostic"
	"rowdoc/normalize"
)

// strict explains degraded temporal values by decoding them again without
// degradation.
var strict = normalize.New(normalize.WithStrictTemporal())

// Inspect assembles row and reports every column that did not render as a
// plain value. A normalization failure is reported as an error diagnostic and
// returned as a *RowError together with the partial document.
func (c *Converter) Inspect(row column.Row) (*document.Document, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	doc := document.WithCapacity(row.Len())

	for name, v := range row.Pairs() {
		kind := v.Kind.Short()

		node, outcome, err := c.normalizer.NormalizeDetailed(name, v)
		if err != nil {
			code := diagnostic.CodeTemporalError
			if errors.Is(err, normalize.ErrUnsupportedKind) {
				code = diagnostic.CodeUnsupportedKind
			}

			diags.AddError(code, err.Error(), name, kind)
			return doc, diags, &RowError{Stage: StageNormalize, Column: name, Err: err}
		}

		switch outcome {
		case normalize.OutcomeNull:
			diags.AddInfo(diagnostic.CodeNull, "absent value rendered as null", name, kind)
		case normalize.OutcomeEmptyText:
			diags.AddInfo(diagnostic.CodeEmptyText, "absent text rendered as empty string", name, kind)
		case normalize.OutcomeTextFallback:
			diags.AddWarning(diagnostic.CodeTextFallback, "non-finite float rendered as text "+node.String(), name, kind)
		case normalize.OutcomeDegraded:
			msg := "malformed temporal value rendered as null"
			if _, err := strict.Normalize(name, v); err != nil {
				msg += ": " + err.Error()
			}
			diags.AddWarning(diagnostic.CodeTemporalDegraded, msg, name, kind)
		}

		doc.Set(name, node)
	}

	return doc, diags, nil
}
