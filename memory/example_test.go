package memory_test

import (
	"fmt"

	"github.com/cwbudde/algo-blas/memory"
)

func ExampleMemory_Float64Window() {
	mem, err := memory.New(1, 4)
	if err != nil {
		panic(err)
	}

	if err := mem.WriteFloat64s(0, []float64{1, -2, 3}); err != nil {
		panic(err)
	}

	w, _ := mem.Float64Window(0, 3)
	v, _ := w.At(1)
	fmt.Println(v, w.Valid())

	_, _ = mem.Grow(1)
	_, err = w.At(1)
	fmt.Println(w.Valid(), err)
	// Output:
	// -2 true
	// false memory: window invalidated by growth: window epoch 0, memory epoch 1
}
