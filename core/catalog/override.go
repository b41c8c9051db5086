// Package catalog - Pricebook override files
// Operators can re-price individual components without rebuilding the
// binary by shipping an HCL pricebook next to the package data.
package catalog

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"package-audit/internal/errors"
)

// Override re-prices or renames a single catalog component
type Override struct {
	ID          string
	UnitPrice   *decimal.Decimal
	DisplayName string
}

// LoadOverrides parses a pricebook file of the form
//
//	component "hdd-8tb" {
//	  price        = 1350
//	  display_name = "Surveillance HDD 8TB (WD Purple)"
//	}
//
// Overrides for ids the catalog does not recognize are rejected so typos
// cannot silently create orphan components.
func LoadOverrides(path string) ([]Override, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read pricebook", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeParsing, "failed to parse pricebook", diags)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "component", LabelNames: []string{"id"}},
		},
	})
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeParsing, "invalid pricebook structure", diags)
	}

	var overrides []Override
	for _, block := range content.Blocks {
		if len(block.Labels) != 1 {
			continue
		}

		override := Override{ID: block.Labels[0]}

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, errors.Wrapf(errors.TypeParsing, diags, "invalid component block %q", override.ID)
		}

		if attr, ok := attrs["price"]; ok {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() || val.Type() != cty.Number {
				return nil, errors.Newf(errors.TypeParsing, "component %q: price must be a number", override.ID)
			}
			p, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
			if err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "component %q: invalid price", override.ID)
			}
			if p.IsNegative() {
				return nil, errors.Newf(errors.TypeInput, "component %q: price must not be negative", override.ID)
			}
			override.UnitPrice = &p
		}

		if attr, ok := attrs["display_name"]; ok {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() || val.Type() != cty.String {
				return nil, errors.Newf(errors.TypeParsing, "component %q: display_name must be a string", override.ID)
			}
			override.DisplayName = val.AsString()
		}

		overrides = append(overrides, override)
	}

	return overrides, nil
}

// ApplyOverrides applies a pricebook to the catalog in place
func (c *Catalog) ApplyOverrides(overrides []Override) error {
	for _, o := range overrides {
		entry, ok := c.entries[o.ID]
		if !ok {
			return errors.Newf(errors.TypeInput, "pricebook references unknown component %q", o.ID)
		}
		if o.UnitPrice != nil {
			entry.UnitPrice = *o.UnitPrice
		}
		if o.DisplayName != "" {
			entry.DisplayName = o.DisplayName
		}
	}
	return nil
}
