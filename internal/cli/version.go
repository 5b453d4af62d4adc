package cli

// Overridden at build time with -ldflags "-X ...cli.version=".
var version = "0.5.0"
