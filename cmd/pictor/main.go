// pictor renders layout scripts to SVG (and optionally PNG) from the
// command line.
package main

func main() {
	Execute()
}
