package scenario

// Opt holds an optional value.
type Opt struct{ v int }

func (o Opt) unwrap() int { return o.v }

// Sum adds the unwrapped value.
func Sum(opt Opt) int {
	x := 1 + 0
	return x + opt.unwrap()
}
