//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-blas/idamax"
	"github.com/cwbudde/algo-blas/memory"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	// Host-resident vectors never touch linear memory; a zero-page module
	// gives them bounds-checked access through Reduce.
	empty, err := memory.New(0, 0)
	if err != nil {
		panic(err)
	}
	host, err := idamax.NewModule(empty)
	if err != nil {
		panic(err)
	}

	api.Set("idamax", export(func(args []js.Value) any {
		if len(args) < 3 {
			return -1
		}
		n, stride := args[0].Int(), args[2].Int()
		x := float64s(args[1])
		idx, err := host.Reduce(n, idamax.HostOperand(x), stride, idamax.Offset(n, stride))
		if err != nil {
			return err.Error()
		}
		return idx
	}))

	api.Set("ndarray", export(func(args []js.Value) any {
		if len(args) < 4 {
			return -1
		}
		x := float64s(args[1])
		idx, err := host.Reduce(args[0].Int(), idamax.HostOperand(x), args[2].Int(), args[3].Int())
		if err != nil {
			return err.Error()
		}
		return idx
	}))

	api.Set("Module", export(func(args []js.Value) any {
		initial, maximum := 0, 1
		if len(args) > 0 {
			initial = args[0].Int()
		}
		if len(args) > 1 {
			maximum = args[1].Int()
		}
		if initial < 0 || maximum < 0 {
			return "negative page count"
		}
		mem, err := memory.New(uint32(initial), uint32(maximum))
		if err != nil {
			return err.Error()
		}
		mod, err := idamax.NewModule(mem)
		if err != nil {
			return err.Error()
		}
		return moduleObject(mod)
	}))

	js.Global().Set("AlgoBLAS", api)
	select {}
}

func moduleObject(mod *idamax.Module) js.Value {
	obj := js.Global().Get("Object").New()

	obj.Set("initialize", export(func(args []js.Value) any {
		if err := mod.Initialize(); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	obj.Set("write", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		if err := mod.Write(args[0].Int(), float64s(args[1])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	obj.Set("read", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Global().Get("Float64Array").New(0)
		}
		w, err := mod.Read(args[0].Int(), args[1].Int())
		if err != nil {
			return err.Error()
		}
		vals, err := w.Float64s()
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float64Array").New(len(vals))
		for i, v := range vals {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	obj.Set("main", export(func(args []js.Value) any {
		if len(args) < 3 {
			return -1
		}
		idx, err := mod.InvokeByPointer(int32(args[0].Int()), int32(args[1].Int()), int32(args[2].Int()))
		if err != nil {
			return err.Error()
		}
		return int(idx)
	}))

	obj.Set("ndarray", export(func(args []js.Value) any {
		if len(args) < 4 {
			return -1
		}
		idx, err := mod.Invoke(int32(args[0].Int()), int32(args[1].Int()), int32(args[2].Int()), int32(args[3].Int()))
		if err != nil {
			return err.Error()
		}
		return int(idx)
	}))

	obj.Set("grow", export(func(args []js.Value) any {
		if len(args) < 1 || args[0].Int() < 0 {
			return -1
		}
		prev, err := mod.Memory().Grow(uint32(args[0].Int()))
		if err != nil {
			return -1
		}
		return int(prev)
	}))

	return obj
}

func float64s(v js.Value) []float64 {
	out := make([]float64, v.Length())
	for i := range out {
		out[i] = v.Index(i).Float()
	}
	return out
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
