// Package config provides user configuration management for mystore.
//
// Settings live in a YAML file in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/mystore/config.yaml or $HOME/.config/mystore/config.yaml
//   - macOS: $HOME/.config/mystore/config.yaml
//   - Windows: %LOCALAPPDATA%\mystore\config.yaml
//
// The file holds start-up preferences and an optional list of seed products.
// The dashboard only ever reads it: products added, edited or deleted in a
// session live in memory and are gone when the program exits.
//
// # Example
//
//	version: 1
//	preferences:
//	  default_username: admin
//	  default_sort: low-to-high
//	  currency: "€"
//	  start_route: /dashboard
//	seed:
//	  - title: Blue Mug
//	    price: "12"
//	    quantity: "40"
//	    category: Kitchen
//	    description: Stoneware mug.
//
// # Usage
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
//	store := inventory.NewStore(inventory.WithSeed(settings.Seed...))
package config
