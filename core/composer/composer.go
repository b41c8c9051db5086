// Package composer - Intrinsic price composition
// Prices a mapped component composition against the catalog: sum the
// component unit costs, take off the bundle discount, round the total.
package composer

import (
	"github.com/shopspring/decimal"

	"package-audit/core/catalog"
	"package-audit/core/mapper"
)

// BundleDiscountRate is the fixed package-level discount applied to the
// summed component cost. A bundle sells below the sum of its parts.
var BundleDiscountRate = decimal.NewFromFloat(0.15)

// Breakdown itemizes the intrinsic price of one composition.
// Line items are unrounded; only Total is rounded.
type Breakdown struct {
	Cameras      decimal.Decimal `json:"cameras"`
	Recorder     decimal.Decimal `json:"recorder"`
	Storage      decimal.Decimal `json:"storage"`
	BackupPower  decimal.Decimal `json:"backup_power"`
	Installation decimal.Decimal `json:"installation"`
	Maintenance  decimal.Decimal `json:"maintenance"`
	Accessories  decimal.Decimal `json:"accessories"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Composer prices compositions against an injected catalog
type Composer struct {
	catalog *catalog.Catalog
}

// NewComposer creates a composer backed by the given catalog
func NewComposer(c *catalog.Catalog) *Composer {
	return &Composer{catalog: c}
}

// Compose prices a composition.
// Installation contributes only when the package does not already bundle
// it; maintenance contributes only when it is mandatory for the package.
// Both model the cost of assembling the configuration from parts.
func (c *Composer) Compose(comp mapper.Composition) Breakdown {
	var b Breakdown

	cameraUnit := c.catalog.Lookup("camera-" + string(comp.Cameras.Class))
	b.Cameras = cameraUnit.Mul(decimal.NewFromInt(int64(comp.Cameras.Count)))

	b.Recorder = c.catalog.Lookup("nvr-" + comp.Recorder.ChannelTier)
	b.Storage = c.catalog.Lookup("hdd-" + comp.Storage.SizeTier)

	if comp.BackupPower != nil && comp.BackupPower.Included {
		b.BackupPower = c.catalog.Lookup("ups-" + comp.BackupPower.Tier)
	}

	if !comp.Installation.Included {
		b.Installation = c.catalog.Lookup("installation-" + string(comp.Installation.Tier))
	}

	if comp.Maintenance != nil && comp.Maintenance.Included {
		b.Maintenance = c.catalog.Lookup("maintenance-annual-" + string(comp.Maintenance.Tier))
	}

	for _, id := range comp.Accessories {
		b.Accessories = b.Accessories.Add(c.catalog.Lookup(id))
	}

	b.Subtotal = b.Cameras.
		Add(b.Recorder).
		Add(b.Storage).
		Add(b.BackupPower).
		Add(b.Installation).
		Add(b.Maintenance).
		Add(b.Accessories)

	b.Discount = b.Subtotal.Mul(BundleDiscountRate)
	b.Total = b.Subtotal.Sub(b.Discount).Round(0)

	return b
}
