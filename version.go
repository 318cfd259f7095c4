package winfrac

// Version is the module release version, reported by the winfrac command.
const Version = "0.1.0"
