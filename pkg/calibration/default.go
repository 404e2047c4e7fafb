package calibration

// Default returns the built-in table covering three to five labels.
func Default() *Table {
	t, err := New(map[int]Entry{
		3: {
			High: []float64{5, 50, 87},
			Mid:  []float64{20, 50, 70},
		},
		4: {
			High: []float64{5, 30, 70, 88},
			Mid:  []float64{15, 35, 65, 80},
		},
		5: {
			High: []float64{5, 25, 50, 75, 90},
			Mid:  []float64{15, 28, 50, 70, 80},
		},
	})
	if err != nil {
		panic("calibration: invalid built-in table: " + err.Error())
	}
	return t
}

// Edge margin, in percent, of the uniform high vector.
const uniformMargin = 5.0

// MaxUniformCount is the largest label count the uniform vectors serve.
const MaxUniformCount = 1000

// Uniform returns evenly spaced vectors for count labels. High spans
// [5,95]; Mid places label i at 100*(i+1)/(count+1), so three labels sit at
// 25, 50 and 75. count must be in [MinCount, MaxUniformCount].
func Uniform(count int) Entry {
	e := Entry{High: make([]float64, count), Mid: make([]float64, count)}
	for i := range count {
		e.High[i], e.Mid[i] = UniformAt(i, count)
	}
	return e
}

// UniformAt returns the uniform high and mid positions of label index
// without building the vectors.
func UniformAt(index, count int) (high, mid float64) {
	span := 100 - 2*uniformMargin
	high = uniformMargin + span*float64(index)/float64(count-1)
	mid = 100 * float64(index+1) / float64(count+1)
	return high, mid
}
