// Package script embeds a JavaScript runtime that drives the layout engine.
// Scripts build an element tree through a global `pictor` API and call
// render() on an artboard to produce SVG markup.
package script

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
)

// Engine executes layout scripts against a fresh goja runtime.
type Engine struct {
	vm  *goja.Runtime
	ctx *bindingContext

	lastSVG string
	hasSVG  bool
}

// New creates a new script engine with the console and pictor APIs installed.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	c := &consoleAPI{}
	c.register(vm)

	e.ctx = registerAPI(vm, e)
	return e
}

// Run executes src and returns its completion value.
func (e *Engine) Run(src string) (goja.Value, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return v, nil
}

// RunFile executes the script at path.
func (e *Engine) RunFile(path string) (goja.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return e.Run(string(src))
}

// LastRender returns the markup produced by the most recent render() call in
// a script, if any.
func (e *Engine) LastRender() (string, bool) {
	return e.lastSVG, e.hasSVG
}
