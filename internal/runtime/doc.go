// Package runtime provides the execution context for webopen commands.
//
// It encapsulates shared dependencies needed by commands, such as the loaded
// configuration, the logger, and the browser launcher.
package runtime
