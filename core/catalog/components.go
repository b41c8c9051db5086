// Package catalog - Default component price table
// Canonical ids and unit prices (ILS) for every part a package can bundle.
package catalog

import "github.com/shopspring/decimal"

// Default returns the catalog populated with the standard price table
func Default() *Catalog {
	c := NewCatalog()
	registerCameras(c)
	registerRecorders(c)
	registerStorage(c)
	registerBackupPower(c)
	registerServices(c)
	registerAccessories(c)
	return c
}

func price(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func registerCameras(c *Catalog) {
	c.Register(Component{ID: "camera-2mp-basic", DisplayName: "IP camera 2MP basic", UnitPrice: price(300), Category: CategoryCamera})
	c.Register(Component{ID: "camera-4mp-standard", DisplayName: "IP camera 4MP standard", UnitPrice: price(450), Category: CategoryCamera})
	c.Register(Component{ID: "camera-4mp-ai", DisplayName: "IP camera 4MP with AI analytics", UnitPrice: price(550), Category: CategoryCamera})
	c.Register(Component{ID: "camera-4k", DisplayName: "IP camera 4K", UnitPrice: price(750), Category: CategoryCamera})
	c.Register(Component{ID: "camera-4k-color-night", DisplayName: "IP camera 4K Color Night", UnitPrice: price(900), Category: CategoryCamera})
}

func registerRecorders(c *Catalog) {
	c.Register(Component{ID: "nvr-4ch", DisplayName: "NVR 4 channels", UnitPrice: price(600), Category: CategoryRecorder})
	c.Register(Component{ID: "nvr-8ch", DisplayName: "NVR 8 channels", UnitPrice: price(900), Category: CategoryRecorder})
	c.Register(Component{ID: "nvr-16ch", DisplayName: "NVR 16 channels", UnitPrice: price(1500), Category: CategoryRecorder})
	c.Register(Component{ID: "nvr-32ch", DisplayName: "NVR 32 channels", UnitPrice: price(2800), Category: CategoryRecorder})
	c.Register(Component{ID: "nvr-64ch", DisplayName: "NVR 64 channels", UnitPrice: price(4500), Category: CategoryRecorder})
	c.Register(Component{ID: "nvr-128ch", DisplayName: "NVR 128 channels", UnitPrice: price(8000), Category: CategoryRecorder})
}

func registerStorage(c *Catalog) {
	c.Register(Component{ID: "hdd-1tb", DisplayName: "Surveillance HDD 1TB", UnitPrice: price(250), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-2tb", DisplayName: "Surveillance HDD 2TB", UnitPrice: price(400), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-4tb", DisplayName: "Surveillance HDD 4TB", UnitPrice: price(700), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-8tb", DisplayName: "Surveillance HDD 8TB", UnitPrice: price(1400), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-16tb", DisplayName: "Surveillance HDD 16TB", UnitPrice: price(2800), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-32tb", DisplayName: "Surveillance HDD 32TB", UnitPrice: price(5500), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-64tb", DisplayName: "Surveillance HDD 64TB", UnitPrice: price(11000), Category: CategoryStorage})
	c.Register(Component{ID: "hdd-128tb", DisplayName: "Surveillance HDD 128TB", UnitPrice: price(22000), Category: CategoryStorage})
}

func registerBackupPower(c *Catalog) {
	c.Register(Component{ID: "ups-500va", DisplayName: "UPS 500VA basic", UnitPrice: price(450), Category: CategoryBackupPower})
	c.Register(Component{ID: "ups-1000va", DisplayName: "UPS 1000VA advanced", UnitPrice: price(750), Category: CategoryBackupPower})
	c.Register(Component{ID: "ups-1500va", DisplayName: "UPS 1500VA professional", UnitPrice: price(1200), Category: CategoryBackupPower})
}

func registerServices(c *Catalog) {
	c.Register(Component{ID: "installation-basic", DisplayName: "Installation basic (2-4 cameras)", UnitPrice: price(800), Category: CategoryService})
	c.Register(Component{ID: "installation-standard", DisplayName: "Installation standard (5-8 cameras)", UnitPrice: price(1200), Category: CategoryService})
	c.Register(Component{ID: "installation-advanced", DisplayName: "Installation advanced (9-16 cameras)", UnitPrice: price(2000), Category: CategoryService})
	c.Register(Component{ID: "installation-enterprise", DisplayName: "Installation enterprise (17+ cameras)", UnitPrice: price(3500), Category: CategoryService})
	c.Register(Component{ID: "maintenance-annual-basic", DisplayName: "Annual maintenance basic", UnitPrice: price(500), Category: CategoryService})
	c.Register(Component{ID: "maintenance-annual-standard", DisplayName: "Annual maintenance standard", UnitPrice: price(800), Category: CategoryService})
	c.Register(Component{ID: "maintenance-annual-advanced", DisplayName: "Annual maintenance advanced", UnitPrice: price(1500), Category: CategoryService})
	c.Register(Component{ID: "maintenance-annual-enterprise", DisplayName: "Annual maintenance enterprise", UnitPrice: price(4000), Category: CategoryService})
}

func registerAccessories(c *Catalog) {
	c.Register(Component{ID: "alarm-basic", DisplayName: "Alarm system basic", UnitPrice: price(1200), Category: CategoryAccessory})
	c.Register(Component{ID: "alarm-advanced", DisplayName: "Alarm system advanced", UnitPrice: price(2500), Category: CategoryAccessory})
	c.Register(Component{ID: "alarm-enterprise", DisplayName: "Alarm system enterprise", UnitPrice: price(4500), Category: CategoryAccessory})
	c.Register(Component{ID: "access-control-basic", DisplayName: "Access control basic", UnitPrice: price(3500), Category: CategoryAccessory})
	c.Register(Component{ID: "access-control-enterprise", DisplayName: "Access control enterprise", UnitPrice: price(5500), Category: CategoryAccessory})
	c.Register(Component{ID: "gate-intercom", DisplayName: "Gate intercom", UnitPrice: price(1800), Category: CategoryAccessory})
	c.Register(Component{ID: "gate-intercom-pro", DisplayName: "Gate intercom pro", UnitPrice: price(2400), Category: CategoryAccessory})
}
