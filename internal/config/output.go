package config

// OutputConfig controls where raw responses land on disk.
type OutputConfig struct {
	Dir string
}

func loadOutput() OutputConfig {
	return OutputConfig{
		Dir: envOrDefault(envOutputDir, defaultOutputDir),
	}
}
