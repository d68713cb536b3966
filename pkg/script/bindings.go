package script

import (
	"github.com/dop251/goja"

	"pictor/pkg/element"
	"pictor/pkg/geom"
	"pictor/pkg/shape"
	"pictor/pkg/unit"
)

// bindingContext holds shared state for the layout bindings within a single
// engine. It maintains an element-to-proxy cache so the same JS object is
// returned for the same element (needed for === identity checks and for
// unwrapping element arguments).
type bindingContext struct {
	vm     *goja.Runtime
	engine *Engine
	cache  map[element.Element]*goja.Object
}

// registerAPI sets up the global `pictor` object on the goja runtime.
func registerAPI(vm *goja.Runtime, engine *Engine) *bindingContext {
	ctx := &bindingContext{
		vm:     vm,
		engine: engine,
		cache:  make(map[element.Element]*goja.Object),
	}

	api := vm.NewObject()
	api.Set("artboard", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		a, err := element.NewArtboard(element.ArtboardConfig{
			Width:      m["width"],
			Height:     m["height"],
			Background: str(m, "background"),
			Padding:    m["padding"],
			Direction:  directionFrom(m["direction"]),
			Align:      alignmentFrom(m["align"]),
			Spacing:    f64(m["spacing"]),
			Columns:    int(f64(m["columns"])),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return ctx.proxy(a)
	})
	api.Set("container", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		c, err := element.NewContainer(element.ContainerConfig{
			Direction:   directionFrom(m["direction"]),
			Align:       alignmentFrom(m["align"]),
			Spacing:     f64(m["spacing"]),
			Columns:     int(f64(m["columns"])),
			Width:       m["width"],
			Height:      m["height"],
			Padding:     m["padding"],
			Fill:        str(m, "fill"),
			Stroke:      str(m, "stroke"),
			StrokeWidth: f64(m["strokeWidth"]),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return ctx.proxy(c)
	})
	api.Set("rect", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		r, err := shape.NewRect(shape.RectConfig{
			Width:        m["width"],
			Height:       m["height"],
			Fill:         str(m, "fill"),
			Stroke:       str(m, "stroke"),
			StrokeWidth:  f64(m["strokeWidth"]),
			CornerRadius: f64(m["cornerRadius"]),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		ctx.applyEdges(r, m)
		return ctx.proxy(r)
	})
	api.Set("circle", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		c, err := shape.NewCircle(shape.CircleConfig{
			Radius:      m["radius"],
			Fill:        str(m, "fill"),
			Stroke:      str(m, "stroke"),
			StrokeWidth: f64(m["strokeWidth"]),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return ctx.proxy(c)
	})
	api.Set("line", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		l, err := shape.NewLine(shape.LineConfig{
			X1:          m["x1"],
			Y1:          m["y1"],
			X2:          m["x2"],
			Y2:          m["y2"],
			Stroke:      str(m, "stroke"),
			StrokeWidth: f64(m["strokeWidth"]),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return ctx.proxy(l)
	})
	api.Set("text", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		t, err := shape.NewText(shape.TextConfig{
			Content:    str(m, "content"),
			FontSize:   m["fontSize"],
			Fill:       str(m, "fill"),
			FontFamily: str(m, "fontFamily"),
		})
		if err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return ctx.proxy(t)
	})

	vm.Set("pictor", api)
	return ctx
}

// proxy creates (or retrieves from cache) the JS object wrapping an element.
func (ctx *bindingContext) proxy(el element.Element) goja.Value {
	if v, ok := ctx.cache[el]; ok {
		return v
	}
	obj := ctx.vm.NewObject()
	ctx.cache[el] = obj

	b := element.BaseOf(el)

	obj.Set("position", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		cfg := element.PositionConfig{
			From: pointFrom(m["from"]),
			To:   pointFrom(m["to"]),
			X:    m["x"],
			Y:    m["y"],
		}
		if rm, ok := m["respectMargin"].(bool); ok {
			cfg.RespectMargin = rm
		}
		if err := b.Position(cfg); err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return goja.Undefined()
	})
	obj.Set("rotate", func(call goja.FunctionCall) goja.Value {
		m := exportMap(call.Argument(0))
		cfg := element.RotateConfig{}
		if deg, ok := m["deg"]; ok {
			cfg.Deg = f64(deg)
			cfg.HasDeg = true
		}
		if arg := call.Argument(0); !goja.IsUndefined(arg) && !goja.IsNull(arg) {
			if rel := ctx.unwrap(arg.ToObject(ctx.vm).Get("relativeTo")); rel != nil {
				cfg.RelativeTo = rel
			}
		}
		if pm, ok := m["pivot"].(map[string]any); ok {
			p := geom.Pt(f64(pm["x"]), f64(pm["y"]))
			cfg.Pivot = &p
		}
		b.Rotate(cfg)
		return goja.Undefined()
	})
	obj.Set("rotateBy", func(call goja.FunctionCall) goja.Value {
		b.RotateBy(call.Argument(0).ToFloat())
		return goja.Undefined()
	})
	obj.Set("translate", func(call goja.FunctionCall) goja.Value {
		along := pointFrom(call.Argument(0).Export())
		if err := b.Translate(along, call.Argument(1).Export()); err != nil {
			panic(ctx.vm.NewGoError(err))
		}
		return goja.Undefined()
	})
	obj.Set("setZIndex", func(call goja.FunctionCall) goja.Value {
		b.SetZIndex(int(call.Argument(0).ToInteger()))
		return goja.Undefined()
	})
	obj.Set("absolutePosition", func(goja.FunctionCall) goja.Value {
		return ctx.pointValue(b.AbsolutePosition())
	})

	if bx, ok := el.(interface{ BorderBox() element.Box }); ok {
		anchors := map[string]func(element.Box) geom.Point{
			"topLeft":      element.Box.TopLeft,
			"topCenter":    element.Box.TopCenter,
			"topRight":     element.Box.TopRight,
			"centerLeft":   element.Box.CenterLeft,
			"center":       element.Box.Center,
			"centerRight":  element.Box.CenterRight,
			"bottomLeft":   element.Box.BottomLeft,
			"bottomCenter": element.Box.BottomCenter,
			"bottomRight":  element.Box.BottomRight,
		}
		for name, at := range anchors {
			obj.Set(name, func(goja.FunctionCall) goja.Value {
				return ctx.pointValue(at(bx.BorderBox()))
			})
		}
	} else if c, ok := el.(element.Centered); ok {
		obj.Set("center", func(goja.FunctionCall) goja.Value {
			return ctx.pointValue(c.Center())
		})
	}

	if g, ok := el.(interface {
		AddElement(element.Element)
		RemoveElement(element.Element)
	}); ok {
		obj.Set("addElement", func(call goja.FunctionCall) goja.Value {
			for _, arg := range call.Arguments {
				if child := ctx.unwrap(arg); child != nil {
					g.AddElement(child)
				}
			}
			return goja.Undefined()
		})
		obj.Set("removeElement", func(call goja.FunctionCall) goja.Value {
			if child := ctx.unwrap(call.Argument(0)); child != nil {
				g.RemoveElement(child)
			}
			return goja.Undefined()
		})
	}

	if a, ok := el.(*element.Artboard); ok {
		obj.Set("render", func(goja.FunctionCall) goja.Value {
			markup, err := a.Render()
			if err != nil {
				panic(ctx.vm.NewGoError(err))
			}
			ctx.engine.lastSVG = markup
			ctx.engine.hasSVG = true
			return ctx.vm.ToValue(markup)
		})
	}

	if l, ok := el.(*shape.Line); ok {
		obj.Set("bindStartTo", func(call goja.FunctionCall) goja.Value {
			source := ctx.unwrap(call.Argument(0))
			if source == nil {
				panic(ctx.vm.NewTypeError("bindStartTo: argument is not an element"))
			}
			if err := l.BindStartTo(source); err != nil {
				panic(ctx.vm.NewGoError(err))
			}
			return goja.Undefined()
		})
		obj.Set("bindEndTo", func(call goja.FunctionCall) goja.Value {
			source := ctx.unwrap(call.Argument(0))
			if source == nil {
				panic(ctx.vm.NewTypeError("bindEndTo: argument is not an element"))
			}
			if err := l.BindEndTo(source); err != nil {
				panic(ctx.vm.NewGoError(err))
			}
			return goja.Undefined()
		})
	}

	return obj
}

// unwrap extracts the element behind a proxy, or nil if val is not one.
func (ctx *bindingContext) unwrap(val goja.Value) element.Element {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj := val.ToObject(ctx.vm)
	for el, cached := range ctx.cache {
		if cached.SameAs(obj) {
			return el
		}
	}
	return nil
}

// applyEdges sets box-model edges named in a constructor config map.
func (ctx *bindingContext) applyEdges(bd interface {
	SetMargin(geom.Edge)
	SetBorder(geom.Edge)
	SetPadding(geom.Edge)
}, m map[string]any) {
	if v, ok := m["margin"]; ok {
		bd.SetMargin(ctx.edge(v))
	}
	if v, ok := m["border"]; ok {
		bd.SetBorder(ctx.edge(v))
	}
	if v, ok := m["padding"]; ok {
		bd.SetPadding(ctx.edge(v))
	}
}

func (ctx *bindingContext) edge(v any) geom.Edge {
	e, err := unit.ParseEdge(v)
	if err != nil {
		panic(ctx.vm.NewGoError(err))
	}
	return e
}

func (ctx *bindingContext) pointValue(p geom.Point) goja.Value {
	obj := ctx.vm.NewObject()
	obj.Set("x", p.X)
	obj.Set("y", p.Y)
	return obj
}

// exportMap exports a JS value as a config map, tolerating missing arguments.
func exportMap(v goja.Value) map[string]any {
	if v == nil || goja.IsNull(v) || goja.IsUndefined(v) {
		return map[string]any{}
	}
	if m, ok := v.Export().(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func f64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func pointFrom(v any) geom.Point {
	if m, ok := v.(map[string]any); ok {
		return geom.Pt(f64(m["x"]), f64(m["y"]))
	}
	return geom.Point{}
}

// directionFrom maps a DSL direction string onto the container direction.
// Anything unrecognized (including absence) means freeform.
func directionFrom(v any) element.Direction {
	switch v {
	case "horizontal":
		return element.Horizontal
	case "vertical":
		return element.Vertical
	case "grid":
		return element.Grid
	default:
		return element.Freeform
	}
}

// alignmentFrom maps a DSL alignment string onto the cross-axis alignment.
func alignmentFrom(v any) element.Alignment {
	switch v {
	case "center":
		return element.AlignCenter
	case "end":
		return element.AlignEnd
	default:
		return element.AlignStart
	}
}
