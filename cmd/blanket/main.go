// Command blanket assembles breeding blanket transport models and exports
// them for the Monte Carlo engine.
package main

func main() {
	Execute()
}
