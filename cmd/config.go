package cmd

// Default service area covering the city zone delivery associates roam in.
const (
	DefaultServiceAreaWestLng  = 76.3647
	DefaultServiceAreaSouthLat = 30.3380
	DefaultServiceAreaEastLng  = 76.4000
	DefaultServiceAreaNorthLat = 30.3562
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	BaseFare            float64
	PerKmRate           float64
	HubBufferSize       int
	ServiceAreaWestLng  float64
	ServiceAreaSouthLat float64
	ServiceAreaEastLng  float64
	ServiceAreaNorthLat float64
	SimulatorEnabled    bool
}
