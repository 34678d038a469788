package version

// Version is set at build time with -ldflags "-X rnapairs/internal/version.Version=...".
var Version = "dev"
