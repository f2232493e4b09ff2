package models

// Setting is a single site-wide key/value pair.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
