package config

type Config struct {
	LogLevel string `default:"warn"`
	Profile  ProfileConfig
}

type ProfileConfig struct {
	// Dir is the Chrome profile directory. Empty means auto-detect from the
	// operating system.
	Dir string
	// File is the name of the transport security store inside Dir.
	File string `default:"TransportSecurity"`
}
