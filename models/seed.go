package models

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"fintrack/config"
)

type CategorySeed struct {
	Name string `yaml:"name"`
}

// LoadCategorySeeds upserts the shared global categories (owner NULL) from a
// yaml file. Run at API boot, idempotent.
func LoadCategorySeeds(path string) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	var seeds []CategorySeed
	if err := yaml.Unmarshal(buf, &seeds); err != nil {
		return err
	}

	for _, seed := range seeds {
		var category Category

		err := config.DataBase.
			Where("name = ? AND user_id IS NULL", seed.Name).
			FirstOrCreate(&category, Category{Name: seed.Name}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
