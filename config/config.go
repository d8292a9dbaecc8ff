package config

import (
	"os"
	"strings"
)

// Config holds the env-driven settings. Defaults keep the service
// runnable with no .env at all.
type Config struct {
	Port        string
	DataFile    string
	InvoiceDir  string
	ReceiptDir  string
	HotelName   string
	CorsOrigins []string
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the process environment. godotenv is applied by main
// before this runs.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DataFile:    getenv("DATA_FILE", "rooms.json"),
		InvoiceDir:  getenv("INVOICE_DIR", "invoices"),
		ReceiptDir:  getenv("RECEIPT_DIR", "receipts"),
		HotelName:   getenv("HOTEL_NAME", "Hotel CG"),
		CorsOrigins: parseCorsOrigins(),
	}
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
