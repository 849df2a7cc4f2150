package model

// ================ Config ================
type CatalogConfig struct {
	DataFile          string  `envconfig:"CATALOG_DATA_FILE" default:"padaria.json"`
	ExportFile        string  `envconfig:"CATALOG_EXPORT_FILE" default:"exportacao_padaria.json"`
	DefaultDiscount   float64 `envconfig:"CATALOG_DEFAULT_DISCOUNT" default:"20"`
	LowStockThreshold int     `envconfig:"CATALOG_LOW_STOCK_THRESHOLD" default:"5"`
}

// DefaultCatalogConfig mirrors the envconfig defaults for callers that skip the environment.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		DataFile:          "padaria.json",
		ExportFile:        "exportacao_padaria.json",
		DefaultDiscount:   20,
		LowStockThreshold: 5,
	}
}
