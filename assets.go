package main

import "embed"

// Templates and static files are embedded for production builds. In dev mode
// they are read from disk so edits show up without a rebuild.
//
//go:embed templates static
var assets embed.FS
