package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/model"
)

// Display holds rendering preferences.
type Display struct {
	Style model.ImageStyle
	Shiny bool
}

// LoadDisplay reads display.style and display.shiny.
func LoadDisplay() (Display, error) {
	style, err := model.ParseImageStyle(viper.GetString("display.style"))
	if err != nil {
		return Display{}, fmt.Errorf("%w: display.style: %w", common.ErrInvalidConfig, err)
	}
	return Display{Style: style, Shiny: viper.GetBool("display.shiny")}, nil
}
