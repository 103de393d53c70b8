// SPDX-License-Identifier: MIT
//
// File: impl_cities.go
// Role: Geographic Cities constructor and the PakistanCities sample network.
//
// Contract:
//   - Coordinates, duplicate names and road endpoints are validated before any node is added.
//   - Cities are added in slice order, then roads in slice order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
)

const (
	methodCities = "Cities"
	minCities    = 1
)

// City is a named geographic node.
type City struct {
	Name string
	Pos  metric.LatLng
}

// Road joins two cities by name.
type Road struct {
	From, To string
}

// PakistanCityList is the sample network shipped with the logistics demo.
var PakistanCityList = []City{
	{Name: "Karachi", Pos: metric.LatLng{Lat: 24.8607, Lng: 67.0011}},
	{Name: "Lahore", Pos: metric.LatLng{Lat: 31.5204, Lng: 74.3587}},
	{Name: "Islamabad", Pos: metric.LatLng{Lat: 33.6844, Lng: 73.0479}},
	{Name: "Peshawar", Pos: metric.LatLng{Lat: 34.0151, Lng: 71.5249}},
	{Name: "Quetta", Pos: metric.LatLng{Lat: 30.1798, Lng: 66.9750}},
	{Name: "Multan", Pos: metric.LatLng{Lat: 30.1575, Lng: 71.5249}},
	{Name: "Faisalabad", Pos: metric.LatLng{Lat: 31.4504, Lng: 73.1350}},
}

// PakistanRoadList joins PakistanCityList into one connected network.
var PakistanRoadList = []Road{
	{From: "Karachi", To: "Multan"},
	{From: "Multan", To: "Lahore"},
	{From: "Lahore", To: "Faisalabad"},
	{From: "Lahore", To: "Islamabad"},
	{From: "Islamabad", To: "Peshawar"},
	{From: "Karachi", To: "Quetta"},
	{From: "Quetta", To: "Multan"},
	{From: "Faisalabad", To: "Islamabad"},
}

// Cities adds cities in slice order and then roads in slice order, with
// haversine (or custom WithWeightFn) weights. If ids is non-nil it receives
// the name→id mapping. Coordinates are validated; duplicate names and roads
// to undefined cities are rejected before anything is added.
func Cities(cities []City, roads []Road, ids map[string]int) Constructor[metric.LatLng] {
	return func(g *core.Graph[metric.LatLng], cfg builderConfig) error {
		if err := validateMin(methodCities, len(cities), minCities); err != nil {
			return err
		}
		known := make(map[string]bool, len(cities))
		for _, c := range cities {
			if !c.Pos.Valid() {
				return fmt.Errorf("%s: %q has invalid position %+v: %w", methodCities, c.Name, c.Pos, ErrConstructFailed)
			}
			if known[c.Name] {
				return fmt.Errorf("%s: duplicate city %q: %w", methodCities, c.Name, ErrConstructFailed)
			}
			known[c.Name] = true
		}
		for _, r := range roads {
			for _, name := range []string{r.From, r.To} {
				if !known[name] {
					return fmt.Errorf("%s: road %s-%s: %q: %w", methodCities, r.From, r.To, name, ErrUnknownCity)
				}
			}
		}

		byName := make(map[string]int, len(cities))
		for _, c := range cities {
			byName[c.Name] = g.AddNode(c.Pos)
		}
		for _, r := range roads {
			if err := link(g, cfg, methodCities, byName[r.From], byName[r.To]); err != nil {
				return err
			}
		}
		if ids != nil {
			for name, id := range byName {
				ids[name] = id
			}
		}

		return nil
	}
}

// PakistanCities adds the demo network. See Cities for ids.
func PakistanCities(ids map[string]int) Constructor[metric.LatLng] {
	return Cities(PakistanCityList, PakistanRoadList, ids)
}
