// Package cli provides binary discovery and invocation building for the
// MAGIC layout editor.
//
// # Discovery
//
// The Discoverer interface locates the MAGIC binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    MagicPath: "",           // Optional explicit path
//	    Logger:    slog.Default(),
//	})
//	magicPath, err := discoverer.Discover()
//
// Discovery searches in the following order:
//  1. Explicit path in Config.MagicPath (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
//
// # Invocation building
//
// BuildArgs produces the argument list for a headless MAGIC session:
//
//	args := cli.BuildArgs(options)
package cli
