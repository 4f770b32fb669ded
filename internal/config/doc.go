// Package config loads animation settings from yaml.
//
// Every key is optional; missing keys keep the values of [DefaultConfig].
//
//	disk_count: 7
//	window_width: 800
//	window_height: 600
//	move_delay: 100ms
//	font_path: resources/DejaVuSans.ttf
//	handoff: sleep       # or handshake
//	event_tick: 0s       # >0 polls close requests on a fixed tick
//	display: gui         # gui, tui or text
package config
