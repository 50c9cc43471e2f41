package model

// Settings holds the values derived from configuration at startup that
// handlers read on every request. It is passed by value and never mutated.
type Settings struct {
	Secret string
}
