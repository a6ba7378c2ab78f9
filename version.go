package teamtree

// Version is the release of this module, overridden at build time with
// -ldflags "-X github.com/aretw0/teamtree.Version=...".
var Version = "0.3.0"
