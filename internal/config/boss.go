package config

type BossDef struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Damage int    `yaml:"damage"`
	Note   string `yaml:"note"`
}
