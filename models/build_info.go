package models

// BuildInfo carries the values stamped into the binary at link time.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
