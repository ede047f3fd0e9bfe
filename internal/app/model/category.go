package model

// ItunesCategory is the channel itunes:category tag with an optional
// nested subcategory.
type ItunesCategory struct {
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory,omitempty"`
}

// Accepts a plain string, a single-entry "category: subcategory"
// map, or the full struct form.
func (c *ItunesCategory) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		c.Category = name
		return nil
	}

	var mapData map[string]string
	if err := unmarshal(&mapData); err == nil && len(mapData) == 1 {
		for k, v := range mapData {
			switch k {
			case "category":
				c.Category = v
			case "subcategory":
				c.Subcategory = v
			default:
				c.Category = k
				c.Subcategory = v
			}
		}
		return nil
	}
	// Can not use the ItunesCategory type here as that makes
	// unmarshalling infinitely recursive.
	type itunesCategoryInternal struct {
		Category    string `yaml:"category"`
		Subcategory string `yaml:"subcategory"`
	}
	var category itunesCategoryInternal
	if err := unmarshal(&category); err != nil {
		return err
	}
	c.Category = category.Category
	c.Subcategory = category.Subcategory
	return nil
}
