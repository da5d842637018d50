package mainui

import "fmt"

type tabHeaderEntry struct {
	id       string
	name     string
	selected bool
}

func (t tabHeaderEntry) render() string {
	return fmt.Sprintf(" %s ", t.name)
}
