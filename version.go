package swell

// Version is the current release of the Swell library.
var Version = "0.2.0"
