// Package modules assembles the overlay modules the map window runs.
package modules

import (
	"mappy/host"
	"mappy/module"
	"mappy/modules/flag"
	"mappy/modules/party"
	"mappy/modules/pet"
	"mappy/modules/player"
)

// Registry returns every module in registration order. The flag module is
// created by the caller because the window places flags on it.
func Registry(h host.Host, f *flag.Flag) []module.Module {
	mods := []module.Module{
		pet.New(h),
		party.New(h),
		player.New(h),
	}
	if f != nil {
		mods = append(mods, f)
	}
	return mods
}
