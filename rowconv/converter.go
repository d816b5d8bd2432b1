package rowconv

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"rowdoc/column"
	"rowdoc/decode"
	"rowdoc/document"
	"rowdoc/internal/diagnostic"
	"rowdoc/normalize"
)

// Converter assembles rows with a configured normalizer. It holds no mutable
// state and is safe for concurrent use.
type Converter struct {
	normalizer *normalize.Normalizer
}

// New returns a converter whose normalizer is built from opts.
func New(opts ...normalize.Option) *Converter {
	return &Converter{normalizer: normalize.New(opts...)}
}

var defaultConverter = New()

// Assemble builds the document of row with the default converter.
func Assemble(row column.Row) (*document.Document, error) {
	return defaultConverter.Assemble(row)
}

// Convert assembles and decodes row with the default converter.
func Convert[R any](row column.Row, dec *decode.Decoder[R]) (R, error) {
	return ConvertWith(defaultConverter, row, dec)
}

// ConvertAll converts rows with the default converter, see ConvertAllWith.
func ConvertAll[R any](ctx context.Context, rows []column.Row, dec *decode.Decoder[R], limit int) ([]R, error) {
	return ConvertAllWith(ctx, defaultConverter, rows, dec, limit)
}

// Inspect assembles row with the default converter and reports every column
// that did not render as a plain value.
func Inspect(row column.Row) (*document.Document, diagnostic.Diagnostics, error) {
	return defaultConverter.Inspect(row)
}

// Assemble builds an ordered document with one entry per column, in column
// order. A repeated column name overwrites the earlier value in place.
func (c *Converter) Assemble(row column.Row) (*document.Document, error) {
	doc := document.WithCapacity(row.Len())

	for name, v := range row.Pairs() {
		node, err := c.normalizer.Normalize(name, v)
		if err != nil {
			return nil, &RowError{Stage: StageNormalize, Column: name, Err: err}
		}

		doc.Set(name, node)
	}

	return doc, nil
}

// ConvertWith assembles row with c and decodes it with dec.
func ConvertWith[R any](c *Converter, row column.Row, dec *decode.Decoder[R]) (R, error) {
	var zero R

	doc, err := c.Assemble(row)
	if err != nil {
		return zero, err
	}

	res, err := dec.Decode(doc)
	if err != nil {
		re := &RowError{Stage: StageDecode, Err: err}

		var de *decode.Error
		if errors.As(err, &de) {
			re.Column = de.Key
		}

		return zero, re
	}

	return res, nil
}

// ConvertAllWith converts independent rows concurrently, at most limit at a
// time (limit <= 0 means no limit). Results keep the order of rows. The first
// failure cancels the remaining conversions and is returned with its row index.
func ConvertAllWith[R any](
	ctx context.Context,
	c *Converter,
	rows []column.Row,
	dec *decode.Decoder[R],
	limit int,
) ([]R, error) {
	res := make([]R, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec, err := ConvertWith(c, row, dec)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}

			res[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// cancelled before any row was scheduled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
