package demo

type Opt struct{}

func (Opt) unwrap() int { return 0 }

var opt Opt

var a = 1 + 0 // want `AR01: Ineffective operation`
var b = 2 + 3
var c = opt.unwrap() // want "CL01: `unwrap` is used here"

func f(x int) int {
	return 0 + x // want `AR01: Ineffective operation`
}
