package version

// VERSION is the current SKMAP version
const VERSION = "0.1.0"
