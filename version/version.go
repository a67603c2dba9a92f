package version

// Version is the current release of the signup hub.
const Version = "0.2.0"
