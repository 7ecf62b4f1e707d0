package combat

import (
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// Weather is the field condition for a battle. Sand and Hail are selectable
// but do not touch the damage formula.
type Weather string

const (
	WeatherNone Weather = "None"
	WeatherSun  Weather = "Sun"
	WeatherRain Weather = "Rain"
	WeatherSand Weather = "Sand"
	WeatherHail Weather = "Hail"
)

var weatherCycle = []Weather{WeatherNone, WeatherSun, WeatherRain, WeatherSand, WeatherHail}

// ParseWeather resolves a weather name case-insensitively
func ParseWeather(name string) (Weather, error) {
	for _, w := range weatherCycle {
		if strings.EqualFold(string(w), strings.TrimSpace(name)) {
			return w, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown weather '%s'", name)
}

// Next returns the following weather in the None, Sun, Rain, Sand, Hail cycle
func (w Weather) Next() Weather {
	for i, c := range weatherCycle {
		if c == w {
			return weatherCycle[(i+1)%len(weatherCycle)]
		}
	}
	return WeatherNone
}

// Modifier is the weather multiplier for a move of type t
func (w Weather) Modifier(t typechart.TypeName) float64 {
	switch w {
	case WeatherRain:
		switch t {
		case typechart.Water:
			return 1.5
		case typechart.Fire:
			return 0.5
		}
	case WeatherSun:
		switch t {
		case typechart.Fire:
			return 1.5
		case typechart.Water:
			return 0.5
		}
	}
	return 1
}
