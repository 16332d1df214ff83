package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"The Void Pendant":      "the-void-pendant",
		"  Oxidized  Relics  ":  "oxidized-relics",
		"One of One":            "one-of-one",
		"Relic — of the Star!!": "relic-of-the-star",
		"":                      "",
		"---":                   "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Make(in), "input %q", in)
	}
}
