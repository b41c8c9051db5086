// Package mapper - Component composition types
package mapper

// CameraClass is a canonical camera tier (catalog id suffix)
type CameraClass string

const (
	Camera2MPBasic     CameraClass = "2mp-basic"
	Camera4MPStandard  CameraClass = "4mp-standard"
	Camera4MPAI        CameraClass = "4mp-ai"
	Camera4K           CameraClass = "4k"
	Camera4KColorNight CameraClass = "4k-color-night"
)

// ServiceTier grades installation and maintenance services
type ServiceTier string

const (
	TierBasic      ServiceTier = "basic"
	TierStandard   ServiceTier = "standard"
	TierAdvanced   ServiceTier = "advanced"
	TierEnterprise ServiceTier = "enterprise"
)

// CameraComposition is the mapped camera complement
type CameraComposition struct {
	Count int         `json:"count"`
	Class CameraClass `json:"class"`
}

// RecorderComposition is the mapped recorder
type RecorderComposition struct {
	// ChannelTier is a canonical channel tier, e.g. "16ch"
	ChannelTier string `json:"channel_tier"`
}

// StorageComposition is the mapped storage
type StorageComposition struct {
	// SizeTier is a canonical size tier, e.g. "8tb"
	SizeTier string `json:"size_tier"`
}

// BackupPowerComposition is the mapped UPS
type BackupPowerComposition struct {
	// Tier is a canonical VA tier, e.g. "1000va"
	Tier     string `json:"tier"`
	Included bool   `json:"included"`
}

// InstallationComposition is the mapped installation service
type InstallationComposition struct {
	// Included reports whether the package already bundles installation
	Included bool        `json:"included"`
	Tier     ServiceTier `json:"tier"`
}

// MaintenanceComposition is the mapped maintenance service
type MaintenanceComposition struct {
	// Included reports whether maintenance is mandatory for the package
	Included bool        `json:"included"`
	Tier     ServiceTier `json:"tier"`
}

// Composition is the fully mapped component set of one package.
// Every referenced tier resolves to an id the catalog recognizes.
type Composition struct {
	Cameras      CameraComposition       `json:"cameras"`
	Recorder     RecorderComposition     `json:"recorder"`
	Storage      StorageComposition      `json:"storage"`
	BackupPower  *BackupPowerComposition `json:"backup_power,omitempty"`
	Installation InstallationComposition `json:"installation"`
	Maintenance  *MaintenanceComposition `json:"maintenance,omitempty"`

	// Accessories holds canonical accessory ids
	Accessories []string `json:"accessories,omitempty"`
}

// ComponentIDs resolves the composition to the catalog ids it references,
// cameras first, accessories last
func (c *Composition) ComponentIDs() []string {
	ids := []string{
		"camera-" + string(c.Cameras.Class),
		"nvr-" + c.Recorder.ChannelTier,
		"hdd-" + c.Storage.SizeTier,
	}
	if c.BackupPower != nil {
		ids = append(ids, "ups-"+c.BackupPower.Tier)
	}
	ids = append(ids, "installation-"+string(c.Installation.Tier))
	if c.Maintenance != nil {
		ids = append(ids, "maintenance-annual-"+string(c.Maintenance.Tier))
	}
	ids = append(ids, c.Accessories...)
	return ids
}
