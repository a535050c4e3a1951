package internal

// Version of meixner, overridden at build time with
// -ldflags "-X codeberg.org/snonux/meixner/internal.Version=..."
var Version = "0.1.0"
