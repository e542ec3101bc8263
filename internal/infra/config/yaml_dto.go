package config

type yamlConfig struct {
	PNGSecret struct {
		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Write struct {
			Backup *bool `yaml:"backup"`
		} `yaml:"write"`

		Logging struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"pngsecret"`
}
