// Package mapper - Specification to composition mapping
// Pure translation of free-text package specification fields onto the
// catalog's canonical keys. Every rule degrades to a documented default,
// never to an error.
package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"package-audit/core/types"
)

// storageTiers and channelTiers are the defined capacity steps, ascending.
// Free-text values floor onto the largest tier not exceeding them.
var (
	storageTiers = []int{1, 2, 4, 8, 16, 32, 64, 128}
	channelTiers = []int{4, 8, 16, 32, 64, 128}
)

// storagePattern captures the whole numeric token so fractional sizes such
// as "0.5TB" floor to the smallest tier instead of parsing as "5TB".
var storagePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*tb`)

// MapCameraClass resolves free-text camera tags and the AI level to a
// canonical camera class. Branches are evaluated top-down; the first
// match wins and anything unmatched falls back to the 2MP basic class.
func MapCameraClass(tags []string, aiLevel types.AILevel) CameraClass {
	if hasTag(tags, "4K") || hasTag(tags, "8MP") {
		if hasTag(tags, "Color Night") || hasTag(tags, "Color") {
			return Camera4KColorNight
		}
		return Camera4K
	}

	if hasTag(tags, "4MP") {
		if aiLevel == types.AIAdvanced || aiLevel == types.AIEnterprise {
			return Camera4MPAI
		}
		return Camera4MPStandard
	}

	return Camera2MPBasic
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

// MapStorageTier parses a free-text size such as "4TB" and floors it onto
// the defined tiers. Unparsable input defaults to the smallest tier.
func MapStorageTier(size string) string {
	match := storagePattern.FindStringSubmatch(strings.ToLower(size))
	if match == nil {
		return "1tb"
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return "1tb"
	}
	return strconv.Itoa(floorTierFloat(n, storageTiers)) + "tb"
}

// MapChannelTier floors a recorder channel count onto the defined tiers
func MapChannelTier(channels int) string {
	return strconv.Itoa(floorTier(channels, channelTiers)) + "ch"
}

// floorTierFloat is floorTier for fractional inputs such as storage sizes.
func floorTierFloat(n float64, tiers []int) int {
	result := tiers[0]
	for _, tier := range tiers {
		if n >= float64(tier) {
			result = tier
		}
	}
	return result
}

// floorTier returns the largest tier not exceeding n, or the smallest tier
func floorTier(n int, tiers []int) int {
	result := tiers[0]
	for _, tier := range tiers {
		if n >= tier {
			result = tier
		}
	}
	return result
}

// MapInstallationTier grades installation effort by the default camera count
func MapInstallationTier(defaultCameras int) ServiceTier {
	switch {
	case defaultCameras <= 4:
		return TierBasic
	case defaultCameras <= 8:
		return TierStandard
	case defaultCameras <= 16:
		return TierAdvanced
	default:
		return TierEnterprise
	}
}

// MapMaintenanceTier grades maintenance by package category, falling back
// to the camera count for residential packages
func MapMaintenanceTier(category types.Category, defaultCameras int) ServiceTier {
	switch {
	case category == types.CategoryEnterprise:
		return TierEnterprise
	case category == types.CategoryCommercial:
		return TierAdvanced
	case defaultCameras >= 8:
		return TierStandard
	default:
		return TierBasic
	}
}

// MapBackupPowerTier resolves a free-text UPS model string to a VA tier.
// An empty model means the stock 1000VA unit. Substring checks run in
// the order 500, 1000, 1500, so "1500" resolves to the 500VA tier.
func MapBackupPowerTier(model string) (string, bool) {
	if model == "" {
		model = "1000va"
	}
	switch {
	case strings.Contains(model, "500"):
		return "500va", true
	case strings.Contains(model, "1000"):
		return "1000va", true
	case strings.Contains(model, "1500"):
		return "1500va", true
	default:
		return "", false
	}
}

// Map assembles the full composition for one package
func Map(pkg *types.Package) Composition {
	comp := Composition{
		Cameras: CameraComposition{
			Count: pkg.Cameras.Default,
			Class: MapCameraClass(pkg.Cameras.Types, pkg.Cameras.AILevel),
		},
		Recorder: RecorderComposition{
			ChannelTier: MapChannelTier(pkg.Recorder.Channels),
		},
		Storage: StorageComposition{
			SizeTier: MapStorageTier(pkg.Storage.Size),
		},
		Installation: InstallationComposition{
			Included: pkg.Pricing.Installation.Included,
			Tier:     MapInstallationTier(pkg.Cameras.Default),
		},
	}

	if pkg.BackupPower != nil && pkg.BackupPower.Included {
		if tier, ok := MapBackupPowerTier(pkg.BackupPower.Model); ok {
			comp.BackupPower = &BackupPowerComposition{Tier: tier, Included: true}
		}
	}

	if pkg.Pricing.Maintenance != nil {
		comp.Maintenance = &MaintenanceComposition{
			Included: !pkg.Pricing.Maintenance.Optional,
			Tier:     MapMaintenanceTier(pkg.Category, pkg.Cameras.Default),
		}
	}

	comp.Accessories = MapAccessories(pkg.Pricing.Addons)

	return comp
}
