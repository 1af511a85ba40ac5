package svgheadergen

// Version is the module version reported by the CLI. Overridable at build
// time via -ldflags "-X github.com/ryugen-io/svgheadergen.Version=...".
var Version = "0.1.0"
