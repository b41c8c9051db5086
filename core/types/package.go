// Package types - Package record types
// Defines the read-only package specification this subsystem audits.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyILS Currency = "ILS"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Category classifies a package by target market
type Category string

const (
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
	CategoryEnterprise  Category = "Enterprise"
)

// AILevel is the analytics tier of the bundled cameras
type AILevel string

const (
	AINone       AILevel = "none"
	AIBasic      AILevel = "basic"
	AIAdvanced   AILevel = "advanced"
	AIEnterprise AILevel = "enterprise"
)

// CameraSpec describes the camera complement of a package
type CameraSpec struct {
	// Min and Max bound the supported camera count
	Min int `json:"min"`
	Max int `json:"max"`

	// Default is the count the package ships with
	Default int `json:"default"`

	// Types holds free-text capability tags (e.g. "4K", "Color Night")
	Types []string `json:"types"`

	// AILevel is the analytics tier
	AILevel AILevel `json:"ai_level,omitempty"`
}

// RecorderSpec describes the network video recorder
type RecorderSpec struct {
	// Channels is the recorder channel count
	Channels int `json:"channels"`

	// Model is an optional model designation
	Model string `json:"model,omitempty"`
}

// StorageSpec describes the recording storage
type StorageSpec struct {
	// Size is free-text, e.g. "4TB"
	Size string `json:"size"`

	// RecordingTime is an optional retention hint, e.g. "30 days"
	RecordingTime string `json:"recording_time,omitempty"`
}

// BackupPowerSpec describes an optional UPS
type BackupPowerSpec struct {
	// Included reports whether the package bundles backup power
	Included bool `json:"included"`

	// Model is a free-text model string, e.g. "APC 1000VA"
	Model string `json:"model,omitempty"`
}

// Addon is an optional extra sold with a package
type Addon struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Optional bool            `json:"optional"`
}

// InstallationSpec reports whether installation is bundled
type InstallationSpec struct {
	Included bool `json:"included"`
}

// MaintenanceSpec describes the annual maintenance plan
type MaintenanceSpec struct {
	// Annual is the yearly maintenance price on the package record
	Annual decimal.Decimal `json:"annual"`

	// Optional marks the plan as opt-in rather than mandatory
	Optional bool `json:"optional"`
}

// Pricing holds the hand-authored pricing of a package
type Pricing struct {
	// Listed is the hand-set package price (may legitimately be zero)
	Listed decimal.Decimal `json:"listed"`

	// Currency is the pricing currency
	Currency Currency `json:"currency"`

	// Installation reports whether installation is bundled into Listed
	Installation InstallationSpec `json:"installation"`

	// Maintenance is the optional maintenance plan
	Maintenance *MaintenanceSpec `json:"maintenance,omitempty"`

	// Addons lists extras attached to the package
	Addons []Addon `json:"addons,omitempty"`
}

// Package is one bundled product record
type Package struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Pricing Pricing `json:"pricing"`

	Cameras     CameraSpec       `json:"cameras"`
	Recorder    RecorderSpec     `json:"recorder"`
	Storage     StorageSpec      `json:"storage"`
	BackupPower *BackupPowerSpec `json:"backup_power,omitempty"`
}
