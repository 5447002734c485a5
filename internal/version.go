package internal

// Version is the pagelate release version.
const Version = "0.1.0"
