// Package messages holds every user-facing string, keyed by message ID.
package messages

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPo []byte

var catalogue = load()

func load() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(enPo)
	return po
}

// Get returns the text for key, formatted with vars. Unknown keys are returned unchanged.
func Get(key string, vars ...interface{}) string {
	return catalogue.Get(key, vars...)
}
