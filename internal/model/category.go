package model

// Category describes one generation/region of the catalog.
type Category struct {
	Generation string   `json:"generation"`
	Region     string   `json:"region"`
	Range      string   `json:"national_dex_range"`
	Versions   []string `json:"versions"`
	Features   []string `json:"features"`
}

// Key identifies a category by generation and region.
func (c Category) Key() string {
	return c.Generation + c.Region
}

// Label returns a human readable "Generation I · Kanto" style label.
func (c Category) Label() string {
	switch {
	case c.Generation == "":
		return c.Region
	case c.Region == "":
		return c.Generation
	default:
		return c.Generation + " · " + c.Region
	}
}
