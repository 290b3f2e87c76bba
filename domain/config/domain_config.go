package config

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Analysis gate
	MinAnalyzeTurn int

	// Conversation constraints
	MaxMessageLength int
	MaxThemeLength   int

	// Validation settings
	AllowEmptyTheme bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Analysis gate
		MinAnalyzeTurn: 3,

		// Conversation constraints
		MaxMessageLength: 4000,
		MaxThemeLength:   200,

		// Validation settings
		AllowEmptyTheme: false,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Tighter limits for production
	config.MaxMessageLength = 2000

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.MaxMessageLength = 10000
	config.AllowEmptyTheme = true

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}
