// The deploy command provisions the salary prediction API on Render.
package main

func main() {
	Execute()
}
